package model

import (
	"fmt"
	"strings"
	"time"
)

// NotificationKind enumerates the notification families derived from
// registry state. Notifications are never stored; they are recomputed
// from current senior rows and overlaid with per-user read state.
type NotificationKind string

const (
	NotificationPending  NotificationKind = "pending"
	NotificationReleased NotificationKind = "released"
)

func (k NotificationKind) Valid() bool {
	return k == NotificationPending || k == NotificationReleased
}

// ID builds the deterministic synthetic id for a senior, stable across
// recomputations so read state can be keyed on it.
func (k NotificationKind) ID(seniorID int64) string {
	return fmt.Sprintf("%s-%d", k, seniorID)
}

// ParseNotificationID splits a synthetic id back into its kind and
// senior id.
func ParseNotificationID(id string) (NotificationKind, int64, error) {
	i := strings.LastIndexByte(id, '-')
	if i <= 0 {
		return "", 0, fmt.Errorf("malformed notification id %q", id)
	}
	k := NotificationKind(id[:i])
	if !k.Valid() {
		return "", 0, fmt.Errorf("unknown notification kind in id %q", id)
	}
	var seniorID int64
	if _, err := fmt.Sscanf(id[i+1:], "%d", &seniorID); err != nil {
		return "", 0, fmt.Errorf("malformed notification id %q", id)
	}
	return k, seniorID, nil
}

// Notification is an ephemeral, derived item.
type Notification struct {
	ID        string           `json:"id"`
	Kind      NotificationKind `json:"kind"`
	SeniorID  int64            `json:"senior_id"`
	Message   string           `json:"message"`
	CreatedAt time.Time        `json:"created_at"`
	IsRead    bool             `json:"is_read"`
	ReadAt    *time.Time       `json:"read_at,omitempty"`
}

// NotificationStatus is the persisted per-user read flag for one
// synthetic notification id.
type NotificationStatus struct {
	ID             int64      `json:"id"`
	UserID         int64      `json:"user_id"`
	NotificationID string     `json:"notification_id"`
	IsRead         bool       `json:"is_read"`
	ReadAt         *time.Time `json:"read_at,omitempty"`
}
