package repository

import (
	"context"
	"time"

	"github.com/oscahub/benefits-gateway/internal/model"
	"github.com/oscahub/benefits-gateway/pkg/pg"
	"gorm.io/gorm/clause"
)

type NotificationRepository struct {
	*pg.DB
}

func NewNotificationRepository(db *pg.DB) *NotificationRepository {
	return &NotificationRepository{
		db,
	}
}

// MarkRead upserts the read flag for one (user, notification) pair.
func (r *NotificationRepository) MarkRead(ctx context.Context, userID int64, notificationID string, readAt time.Time) error {
	entity := &NotificationStatusEntity{
		UserID:         userID,
		NotificationID: notificationID,
		IsRead:         true,
		ReadAt:         &readAt,
	}
	return r.Write(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "notification_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"is_read", "read_at"}),
		}).
		Create(entity).Error
}

// MarkReadAll upserts every given id for the user. Ids that stopped
// being derivable are simply absent from the set; stale rows are left
// in place.
func (r *NotificationRepository) MarkReadAll(ctx context.Context, userID int64, notificationIDs []string, readAt time.Time) error {
	if len(notificationIDs) == 0 {
		return nil
	}
	return r.WithinTransaction(ctx, func(ctx context.Context) error {
		for _, id := range notificationIDs {
			if err := r.MarkRead(ctx, userID, id, readAt); err != nil {
				return err
			}
		}
		return nil
	})
}

// StatusesFor returns the user's read map keyed by notification id.
func (r *NotificationRepository) StatusesFor(ctx context.Context, userID int64) (map[string]*model.NotificationStatus, error) {
	var entities []*NotificationStatusEntity
	err := r.Read(ctx).
		Where("user_id = ?", userID).
		Find(&entities).
		Error
	if err != nil {
		return nil, err
	}

	statuses := make(map[string]*model.NotificationStatus, len(entities))
	for _, e := range entities {
		statuses[e.NotificationID] = toNotificationStatusModel(e)
	}
	return statuses, nil
}
