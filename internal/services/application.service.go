package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/oscahub/benefits-gateway/internal/model"
	"github.com/oscahub/benefits-gateway/internal/repository"
	"github.com/oscahub/benefits-gateway/pkg/prom"
)

var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrBenefitNotFound     = errors.New("benefit not found")
)

type ApplicationRepository interface {
	CreateBatch(ctx context.Context, benefitID int64, seniorIDs []int64) ([]*model.Application, error)
	UpdateStatus(ctx context.Context, id int64, status model.Status, rejectionReason *string) (*model.Application, error)
	UpdateCategory(ctx context.Context, id int64, category model.Category) (*model.Application, error)
	GetByID(ctx context.Context, id int64) (*model.Application, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, f model.ApplicationFilter) ([]*model.ApplicationDetail, error)
}

type BenefitReader interface {
	GetByID(ctx context.Context, id int64) (*model.Benefit, error)
}

type ApplicationService struct {
	repo     ApplicationRepository
	benefits BenefitReader
}

func NewApplicationService(repo ApplicationRepository, benefits BenefitReader) *ApplicationService {
	return &ApplicationService{
		repo:     repo,
		benefits: benefits,
	}
}

// Submit creates one PENDING application per selected senior. The batch
// is atomic: a failure on any row leaves nothing behind.
func (s *ApplicationService) Submit(ctx context.Context, p model.ApplicationSubmitRequest) ([]*model.Application, error) {
	if err := p.Validate(); err != nil {
		return nil, invalid(err)
	}

	if _, err := s.benefits.GetByID(ctx, p.BenefitID); err != nil {
		if errors.Is(err, repository.ErrBenefitNotFound) {
			return nil, ErrBenefitNotFound
		}
		return nil, fmt.Errorf("look up benefit: %w", err)
	}

	created, err := s.repo.CreateBatch(ctx, p.BenefitID, p.SeniorIDs)
	if err != nil {
		return nil, fmt.Errorf("create applications: %w", err)
	}

	prom.AddCounter(prom.SystemApplications, prom.MetricApplicationsCreated, float64(len(created)))
	return created, nil
}

// UpdateStatus moves the application to any status; there is no
// enforced terminality, admin can move it back. The rejection reason
// accompanies REJECT by convention only; it is stored as given and
// cleared when absent.
func (s *ApplicationService) UpdateStatus(ctx context.Context, p model.ApplicationStatusUpdateRequest) (*model.Application, error) {
	if err := p.Validate(); err != nil {
		return nil, invalid(err)
	}

	updated, err := s.repo.UpdateStatus(ctx, p.ApplicationID, p.Status, p.RejectionReason)
	if err != nil {
		return nil, mapApplicationErr(err)
	}
	prom.IncCounterVec(prom.SystemApplications, prom.MetricStatusUpdates, string(p.Status))
	return updated, nil
}

// UpdateCategory assigns or overrides the category independent of
// status.
func (s *ApplicationService) UpdateCategory(ctx context.Context, p model.ApplicationCategoryUpdateRequest) (*model.Application, error) {
	if err := p.Validate(); err != nil {
		return nil, invalid(err)
	}

	updated, err := s.repo.UpdateCategory(ctx, p.ApplicationID, p.Category)
	return updated, mapApplicationErr(err)
}

func (s *ApplicationService) Delete(ctx context.Context, id int64) error {
	return mapApplicationErr(s.repo.Delete(ctx, id))
}

func (s *ApplicationService) List(ctx context.Context, f model.ApplicationFilter) ([]*model.ApplicationDetail, error) {
	return s.repo.List(ctx, f)
}

func mapApplicationErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, repository.ErrApplicationNotFound) {
		return ErrApplicationNotFound
	}
	return err
}
