package repository

import (
	"context"
	"testing"

	"github.com/oscahub/benefits-gateway/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedApplicationFixtures(t *testing.T, db *testDB) (seniorIDs []int64, benefitID int64) {
	t.Helper()
	ctx := context.Background()

	seniors := NewSeniorRepository(db.DB)
	for _, name := range []string{"Maria", "Jose", "Ana"} {
		s, err := seniors.Create(ctx, newTestSenior(name))
		require.NoError(t, err)
		seniorIDs = append(seniorIDs, s.ID)
	}

	benefits := NewBenefitRepository(db.DB)
	b, err := benefits.Create(ctx, &model.Benefit{
		Name: "Social Pension",
		Requirements: []*model.BenefitRequirement{
			{Name: "valid-id", Required: true},
		},
	})
	require.NoError(t, err)
	return seniorIDs, b.ID
}

func TestApplicationRepository_CreateBatch(t *testing.T) {
	db := setupTestDB(t)
	repo := NewApplicationRepository(db.DB)
	ctx := context.Background()

	seniorIDs, benefitID := seedApplicationFixtures(t, db)

	created, err := repo.CreateBatch(ctx, benefitID, seniorIDs)
	require.NoError(t, err)
	require.Len(t, created, 3)
	for _, app := range created {
		assert.NotZero(t, app.ID)
		assert.Equal(t, model.StatusPending, app.Status)
		assert.Nil(t, app.Category)
		assert.Nil(t, app.RejectionReason)
	}

	listed, err := repo.List(ctx, model.ApplicationFilter{})
	require.NoError(t, err)
	assert.Len(t, listed, 3)
}

func TestApplicationRepository_CreateBatchRollsBackOnFailure(t *testing.T) {
	db := setupTestDB(t)
	repo := NewApplicationRepository(db.DB)
	ctx := context.Background()

	seniorIDs, benefitID := seedApplicationFixtures(t, db)

	// One application per senior per benefit; the duplicate senior id
	// below makes the third insert fail after two have succeeded.
	err := db.rawDB.Exec(
		"CREATE UNIQUE INDEX idx_senior_benefit ON applications (senior_id, benefit_id)").Error
	require.NoError(t, err)

	_, err = repo.CreateBatch(ctx, benefitID, []int64{seniorIDs[0], seniorIDs[1], seniorIDs[1]})
	require.Error(t, err)

	var count int64
	require.NoError(t, db.rawDB.Table("applications").Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestApplicationRepository_UpdateStatus(t *testing.T) {
	db := setupTestDB(t)
	repo := NewApplicationRepository(db.DB)
	ctx := context.Background()

	seniorIDs, benefitID := seedApplicationFixtures(t, db)
	created, err := repo.CreateBatch(ctx, benefitID, seniorIDs[:1])
	require.NoError(t, err)
	appID := created[0].ID

	t.Run("reject with reason", func(t *testing.T) {
		reason := "missing barangay clearance"
		app, err := repo.UpdateStatus(ctx, appID, model.StatusReject, &reason)
		require.NoError(t, err)
		assert.Equal(t, model.StatusReject, app.Status)
		require.NotNil(t, app.RejectionReason)
		assert.Equal(t, reason, *app.RejectionReason)
	})

	t.Run("re-approval clears the reason", func(t *testing.T) {
		app, err := repo.UpdateStatus(ctx, appID, model.StatusApproved, nil)
		require.NoError(t, err)
		assert.Equal(t, model.StatusApproved, app.Status)
		assert.Nil(t, app.RejectionReason)
	})

	t.Run("missing application", func(t *testing.T) {
		_, err := repo.UpdateStatus(ctx, 9999, model.StatusApproved, nil)
		assert.ErrorIs(t, err, ErrApplicationNotFound)
	})
}

func TestApplicationRepository_UpdateCategory(t *testing.T) {
	db := setupTestDB(t)
	repo := NewApplicationRepository(db.DB)
	ctx := context.Background()

	seniorIDs, benefitID := seedApplicationFixtures(t, db)
	created, err := repo.CreateBatch(ctx, benefitID, seniorIDs[:1])
	require.NoError(t, err)

	app, err := repo.UpdateCategory(ctx, created[0].ID, model.CategoryOctogenarian)
	require.NoError(t, err)
	require.NotNil(t, app.Category)
	assert.Equal(t, model.CategoryOctogenarian, *app.Category)

	_, err = repo.UpdateCategory(ctx, 9999, model.CategoryRegular)
	assert.ErrorIs(t, err, ErrApplicationNotFound)
}

func TestApplicationRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewApplicationRepository(db.DB)
	ctx := context.Background()

	seniorIDs, benefitID := seedApplicationFixtures(t, db)
	created, err := repo.CreateBatch(ctx, benefitID, seniorIDs[:1])
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created[0].ID))
	assert.ErrorIs(t, repo.Delete(ctx, created[0].ID), ErrApplicationNotFound)

	listed, err := repo.List(ctx, model.ApplicationFilter{})
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestApplicationRepository_ListJoins(t *testing.T) {
	db := setupTestDB(t)
	repo := NewApplicationRepository(db.DB)
	ctx := context.Background()

	seniorIDs, benefitID := seedApplicationFixtures(t, db)
	_, err := repo.CreateBatch(ctx, benefitID, seniorIDs)
	require.NoError(t, err)

	t.Run("details carry senior and benefit", func(t *testing.T) {
		listed, err := repo.List(ctx, model.ApplicationFilter{})
		require.NoError(t, err)
		require.Len(t, listed, 3)
		for _, d := range listed {
			require.NotNil(t, d.Senior)
			require.NotNil(t, d.Benefit)
			assert.Equal(t, "Social Pension", d.Benefit.Name)
			assert.NotEmpty(t, d.Benefit.Requirements)
		}
	})

	t.Run("filter by senior", func(t *testing.T) {
		listed, err := repo.List(ctx, model.ApplicationFilter{SeniorID: &seniorIDs[0]})
		require.NoError(t, err)
		require.Len(t, listed, 1)
		assert.Equal(t, seniorIDs[0], listed[0].SeniorID)
	})

	t.Run("filter by status", func(t *testing.T) {
		listed, err := repo.List(ctx, model.ApplicationFilter{Statuses: []model.Status{model.StatusApproved}})
		require.NoError(t, err)
		assert.Empty(t, listed)
	})
}

func TestApplicationRepository_CountByStatus(t *testing.T) {
	db := setupTestDB(t)
	repo := NewApplicationRepository(db.DB)
	ctx := context.Background()

	seniorIDs, benefitID := seedApplicationFixtures(t, db)
	created, err := repo.CreateBatch(ctx, benefitID, seniorIDs)
	require.NoError(t, err)

	_, err = repo.UpdateStatus(ctx, created[0].ID, model.StatusApproved, nil)
	require.NoError(t, err)

	pending, err := repo.CountByStatus(ctx, model.StatusPending)
	require.NoError(t, err)
	assert.Equal(t, int64(2), pending)

	approved, err := repo.CountByStatus(ctx, model.StatusApproved)
	require.NoError(t, err)
	assert.Equal(t, int64(1), approved)
}
