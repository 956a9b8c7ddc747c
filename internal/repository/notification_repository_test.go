package repository

import (
	"context"
	"testing"
	"time"

	"github.com/oscahub/benefits-gateway/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationRepository_MarkRead(t *testing.T) {
	db := setupTestDB(t).DB
	repo := NewNotificationRepository(db)
	ctx := context.Background()

	id := model.NotificationPending.ID(7)

	require.NoError(t, repo.MarkRead(ctx, 1, id, time.Now()))

	t.Run("read state is recorded per user", func(t *testing.T) {
		statuses, err := repo.StatusesFor(ctx, 1)
		require.NoError(t, err)
		require.Contains(t, statuses, id)
		assert.True(t, statuses[id].IsRead)
		assert.NotNil(t, statuses[id].ReadAt)

		other, err := repo.StatusesFor(ctx, 2)
		require.NoError(t, err)
		assert.NotContains(t, other, id)
	})

	t.Run("marking again is an upsert, not a duplicate", func(t *testing.T) {
		require.NoError(t, repo.MarkRead(ctx, 1, id, time.Now()))

		statuses, err := repo.StatusesFor(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, statuses, 1)
	})
}

func TestNotificationRepository_MarkReadAll(t *testing.T) {
	db := setupTestDB(t).DB
	repo := NewNotificationRepository(db)
	ctx := context.Background()

	ids := []string{
		model.NotificationPending.ID(1),
		model.NotificationPending.ID(2),
		model.NotificationReleased.ID(3),
	}
	// one already read, the rest fresh
	require.NoError(t, repo.MarkRead(ctx, 5, ids[0], time.Now()))

	require.NoError(t, repo.MarkReadAll(ctx, 5, ids, time.Now()))

	statuses, err := repo.StatusesFor(ctx, 5)
	require.NoError(t, err)
	require.Len(t, statuses, 3)
	for _, id := range ids {
		require.Contains(t, statuses, id)
		assert.True(t, statuses[id].IsRead)
	}
}
