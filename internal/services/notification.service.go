package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/oscahub/benefits-gateway/internal/model"
	"github.com/oscahub/benefits-gateway/pkg/prom"
)

type NotificationRepository interface {
	MarkRead(ctx context.Context, userID int64, notificationID string, readAt time.Time) error
	MarkReadAll(ctx context.Context, userID int64, notificationIDs []string, readAt time.Time) error
	StatusesFor(ctx context.Context, userID int64) (map[string]*model.NotificationStatus, error)
}

// NotificationSeniorReader is the slice of the registry the generator
// needs: pending seniors and released seniors.
type NotificationSeniorReader interface {
	List(ctx context.Context, f model.SeniorFilter) ([]*model.Senior, error)
	ListReleased(ctx context.Context) ([]*model.Senior, error)
}

// NotificationService derives notifications from registry state on
// every fetch and overlays the per-user read map. Nothing but the read
// flags is ever persisted.
type NotificationService struct {
	repo    NotificationRepository
	seniors NotificationSeniorReader
}

func NewNotificationService(repo NotificationRepository, seniors NotificationSeniorReader) *NotificationService {
	return &NotificationService{
		repo:    repo,
		seniors: seniors,
	}
}

func (s *NotificationService) List(ctx context.Context, userID int64) ([]*model.Notification, error) {
	derived, err := s.derive(ctx)
	if err != nil {
		return nil, err
	}

	statuses, err := s.repo.StatusesFor(ctx, userID)
	if err != nil {
		return nil, err
	}

	for _, n := range derived {
		if st, ok := statuses[n.ID]; ok {
			n.IsRead = st.IsRead
			n.ReadAt = st.ReadAt
		}
	}

	sort.Slice(derived, func(i, j int) bool {
		return derived[i].CreatedAt.After(derived[j].CreatedAt)
	})
	return derived, nil
}

func (s *NotificationService) MarkAsRead(ctx context.Context, userID int64, notificationID string) error {
	if _, _, err := model.ParseNotificationID(notificationID); err != nil {
		return invalid(err)
	}
	if err := s.repo.MarkRead(ctx, userID, notificationID, time.Now()); err != nil {
		return err
	}
	prom.IncCounter(prom.SystemNotifications, prom.MetricMarkedRead)
	return nil
}

// MarkAllAsRead recomputes the currently derivable id set and upserts
// every id for the user. Ids that stopped being derivable are simply
// never touched.
func (s *NotificationService) MarkAllAsRead(ctx context.Context, userID int64) error {
	derived, err := s.derive(ctx)
	if err != nil {
		return err
	}
	ids := make([]string, len(derived))
	for i, n := range derived {
		ids[i] = n.ID
	}
	if err := s.repo.MarkReadAll(ctx, userID, ids, time.Now()); err != nil {
		return err
	}
	prom.AddCounter(prom.SystemNotifications, prom.MetricMarkedRead, float64(len(ids)))
	return nil
}

func (s *NotificationService) derive(ctx context.Context) ([]*model.Notification, error) {
	var out []*model.Notification

	pending := model.RemarkPending
	pendingSeniors, err := s.seniors.List(ctx, model.SeniorFilter{Remarks: &pending})
	if err != nil {
		return nil, err
	}
	for _, sen := range pendingSeniors {
		out = append(out, &model.Notification{
			ID:        model.NotificationPending.ID(sen.ID),
			Kind:      model.NotificationPending,
			SeniorID:  sen.ID,
			Message:   fmt.Sprintf("%s %s is pending validation", sen.FirstName, sen.LastName),
			CreatedAt: sen.CreatedAt,
		})
	}

	released, err := s.seniors.ListReleased(ctx)
	if err != nil {
		return nil, err
	}
	for _, sen := range released {
		createdAt := sen.CreatedAt
		if sen.ReleasedAt != nil {
			createdAt = *sen.ReleasedAt
		}
		out = append(out, &model.Notification{
			ID:        model.NotificationReleased.ID(sen.ID),
			Kind:      model.NotificationReleased,
			SeniorID:  sen.ID,
			Message:   fmt.Sprintf("benefit released for %s %s", sen.FirstName, sen.LastName),
			CreatedAt: createdAt,
		})
	}

	return out, nil
}
