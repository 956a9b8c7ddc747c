package repository

import (
	"time"

	"github.com/oscahub/benefits-gateway/internal/model"
)

type NotificationStatusEntity struct {
	ID             int64      `db:"id"              gorm:"primaryKey;autoIncrement;column:id"`
	UserID         int64      `db:"user_id"         gorm:"column:user_id;not null;uniqueIndex:idx_user_notification"`
	NotificationID string     `db:"notification_id" gorm:"column:notification_id;not null;uniqueIndex:idx_user_notification"`
	IsRead         bool       `db:"is_read"         gorm:"column:is_read;not null;default:false"`
	ReadAt         *time.Time `db:"read_at"         gorm:"column:read_at"`
}

func (NotificationStatusEntity) TableName() string {
	return "notification_statuses"
}

func toNotificationStatusModel(e *NotificationStatusEntity) *model.NotificationStatus {
	if e == nil {
		return nil
	}
	return &model.NotificationStatus{
		ID:             e.ID,
		UserID:         e.UserID,
		NotificationID: e.NotificationID,
		IsRead:         e.IsRead,
		ReadAt:         e.ReadAt,
	}
}
