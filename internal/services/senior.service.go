package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/oscahub/benefits-gateway/internal/model"
	"github.com/oscahub/benefits-gateway/internal/repository"
	"github.com/oscahub/benefits-gateway/pkg/logger"
	"github.com/oscahub/benefits-gateway/pkg/prom"
)

var (
	ErrSeniorNotFound  = errors.New("senior not found")
	ErrAlreadyReleased = errors.New("senior is already released")
	ErrNotArchived     = errors.New("senior is not archived")
)

// DefaultReleaseOffset is how far in the future the effective release
// date lands. The office hands out benefits three days after approval.
const DefaultReleaseOffset = 72 * time.Hour

type SeniorRepository interface {
	Create(ctx context.Context, s *model.Senior) (*model.Senior, error)
	Update(ctx context.Context, s *model.Senior) (*model.Senior, error)
	GetByID(ctx context.Context, id int64) (*model.Senior, error)
	List(ctx context.Context, f model.SeniorFilter) ([]*model.Senior, error)
	ListReleased(ctx context.Context) ([]*model.Senior, error)
	ListArchived(ctx context.Context) ([]*model.Senior, error)
	Archive(ctx context.Context, id int64) error
	Restore(ctx context.Context, id int64) error
	Release(ctx context.Context, id int64, effectiveAt time.Time) (*model.Senior, error)
}

// Mailer delivers registration confirmations. Sends are best-effort:
// a failure is logged and never rolls back the registration.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

type SeniorService struct {
	repo          SeniorRepository
	mailer        Mailer
	releaseOffset time.Duration
}

func NewSeniorService(repo SeniorRepository, mailer Mailer, releaseOffset time.Duration) *SeniorService {
	if releaseOffset <= 0 {
		releaseOffset = DefaultReleaseOffset
	}
	return &SeniorService{
		repo:          repo,
		mailer:        mailer,
		releaseOffset: releaseOffset,
	}
}

func (s *SeniorService) Register(ctx context.Context, p model.SeniorCreateRequest) (*model.Senior, error) {
	if err := p.Validate(); err != nil {
		return nil, invalid(err)
	}

	senior := &model.Senior{
		FirstName:        p.FirstName,
		MiddleName:       p.MiddleName,
		LastName:         p.LastName,
		Contact:          p.Contact,
		EmergencyContact: p.EmergencyContact,
		EmergencyPhone:   p.EmergencyPhone,
		Barangay:         p.Barangay,
		Purok:            p.Purok,
		Age:              p.Age,
		Gender:           p.Gender,
		PWD:              p.PWD,
		LowIncome:        p.LowIncome,
		Remarks:          model.RemarkPending,
	}

	created, err := s.repo.Create(ctx, senior)
	if err != nil {
		return nil, err
	}

	if s.mailer != nil && created.Contact != "" {
		subject := "OSCA registration received"
		body := fmt.Sprintf("Good day %s %s, your senior-citizen registration has been received and is pending validation.", created.FirstName, created.LastName)
		if err := s.mailer.Send(ctx, created.Contact, subject, body); err != nil {
			logger.Warn("registration mail failed", "senior_id", created.ID, "error", err)
		}
	}

	return created, nil
}

func (s *SeniorService) Update(ctx context.Context, p model.SeniorUpdateRequest) (*model.Senior, error) {
	if err := p.Validate(); err != nil {
		return nil, invalid(err)
	}

	senior := &model.Senior{
		ID:               p.ID,
		FirstName:        p.FirstName,
		MiddleName:       p.MiddleName,
		LastName:         p.LastName,
		Contact:          p.Contact,
		EmergencyContact: p.EmergencyContact,
		EmergencyPhone:   p.EmergencyPhone,
		Barangay:         p.Barangay,
		Purok:            p.Purok,
		Age:              p.Age,
		Gender:           p.Gender,
		PWD:              p.PWD,
		LowIncome:        p.LowIncome,
		Remarks:          p.Remarks,
	}
	updated, err := s.repo.Update(ctx, senior)
	return updated, mapSeniorErr(err)
}

func (s *SeniorService) Get(ctx context.Context, id int64) (*model.Senior, error) {
	senior, err := s.repo.GetByID(ctx, id)
	return senior, mapSeniorErr(err)
}

func (s *SeniorService) List(ctx context.Context, f model.SeniorFilter) ([]*model.Senior, error) {
	return s.repo.List(ctx, f)
}

func (s *SeniorService) ListArchived(ctx context.Context) ([]*model.Senior, error) {
	return s.repo.ListArchived(ctx)
}

func (s *SeniorService) Archive(ctx context.Context, id int64) error {
	return mapSeniorErr(s.repo.Archive(ctx, id))
}

func (s *SeniorService) Restore(ctx context.Context, id int64) error {
	return mapSeniorErr(s.repo.Restore(ctx, id))
}

// Release stamps the senior with a forward-dated effective release. A
// second release attempt is a conflict, never a silent repeat.
func (s *SeniorService) Release(ctx context.Context, id int64) (*model.Senior, error) {
	senior, err := s.repo.Release(ctx, id, time.Now().Add(s.releaseOffset))
	if err != nil {
		return nil, mapSeniorErr(err)
	}
	prom.IncCounter(prom.SystemSeniors, prom.MetricReleases)
	return senior, nil
}

func mapSeniorErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrSeniorNotFound):
		return ErrSeniorNotFound
	case errors.Is(err, repository.ErrAlreadyReleased):
		return ErrAlreadyReleased
	case errors.Is(err, repository.ErrSeniorNotArchived):
		return ErrNotArchived
	}
	return err
}

func (s *SeniorService) ListReleased(ctx context.Context) ([]*model.Senior, error) {
	return s.repo.ListReleased(ctx)
}
