package repository

import (
	"context"
	"testing"

	"github.com/oscahub/benefits-gateway/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBenefitRepository_CRUD(t *testing.T) {
	db := setupTestDB(t).DB
	repo := NewBenefitRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, &model.Benefit{
		Name:        "Social Pension",
		Description: "Quarterly stipend",
		Requirements: []*model.BenefitRequirement{
			{Name: "valid-id", Required: true},
			{Name: "barangay-clearance", Required: false},
		},
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	t.Run("get carries requirements", func(t *testing.T) {
		got, err := repo.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Social Pension", got.Name)
		assert.Len(t, got.Requirements, 2)
	})

	t.Run("update replaces the requirement set", func(t *testing.T) {
		updated, err := repo.Update(ctx, &model.Benefit{
			ID:          created.ID,
			Name:        "Social Pension",
			Description: "Monthly stipend",
			Requirements: []*model.BenefitRequirement{
				{Name: "valid-id", Required: true},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, "Monthly stipend", updated.Description)
		require.Len(t, updated.Requirements, 1)
		assert.Equal(t, "valid-id", updated.Requirements[0].Name)
	})

	t.Run("update of missing benefit", func(t *testing.T) {
		_, err := repo.Update(ctx, &model.Benefit{ID: 9999, Name: "x"})
		assert.ErrorIs(t, err, ErrBenefitNotFound)
	})

	t.Run("delete cascades requirements", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, created.ID))
		_, err := repo.GetByID(ctx, created.ID)
		assert.ErrorIs(t, err, ErrBenefitNotFound)
		assert.ErrorIs(t, repo.Delete(ctx, created.ID), ErrBenefitNotFound)
	})
}

func TestDocumentRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewDocumentRepository(db.DB)
	ctx := context.Background()

	seniors := NewSeniorRepository(db.DB)
	senior, err := seniors.Create(ctx, newTestSenior("Maria"))
	require.NoError(t, err)

	created, err := repo.Create(ctx, &model.Document{
		SeniorID:     senior.ID,
		Type:         "valid-id",
		OriginalName: "id.jpg",
		StoredName:   "abc123.jpg",
		ContentType:  "image/jpeg",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	t.Run("listed under the senior", func(t *testing.T) {
		docs, err := repo.ListBySenior(ctx, senior.ID)
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, "id.jpg", docs[0].OriginalName)
	})

	t.Run("delete hands back the stored name", func(t *testing.T) {
		storedName, err := repo.Delete(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "abc123.jpg", storedName)

		_, err = repo.Delete(ctx, created.ID)
		assert.ErrorIs(t, err, ErrDocumentNotFound)
	})
}
