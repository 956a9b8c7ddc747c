package services

import (
	"context"
	"errors"

	"github.com/oscahub/benefits-gateway/internal/model"
	"github.com/oscahub/benefits-gateway/internal/repository"
)

type BenefitRepository interface {
	Create(ctx context.Context, b *model.Benefit) (*model.Benefit, error)
	Update(ctx context.Context, b *model.Benefit) (*model.Benefit, error)
	GetByID(ctx context.Context, id int64) (*model.Benefit, error)
	List(ctx context.Context) ([]*model.Benefit, error)
	Delete(ctx context.Context, id int64) error
}

type BenefitService struct {
	repo BenefitRepository
}

func NewBenefitService(repo BenefitRepository) *BenefitService {
	return &BenefitService{
		repo: repo,
	}
}

func (s *BenefitService) Create(ctx context.Context, p model.BenefitCreateRequest) (*model.Benefit, error) {
	if err := p.Validate(); err != nil {
		return nil, invalid(err)
	}

	b := &model.Benefit{
		Name:        p.Name,
		Description: p.Description,
	}
	for _, name := range p.Requirements {
		b.Requirements = append(b.Requirements, &model.BenefitRequirement{
			Name:     name,
			Required: true,
		})
	}
	return s.repo.Create(ctx, b)
}

func (s *BenefitService) Update(ctx context.Context, p model.BenefitUpdateRequest) (*model.Benefit, error) {
	if err := p.Validate(); err != nil {
		return nil, invalid(err)
	}

	b := &model.Benefit{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
	}
	for _, name := range p.Requirements {
		b.Requirements = append(b.Requirements, &model.BenefitRequirement{
			BenefitID: p.ID,
			Name:      name,
			Required:  true,
		})
	}

	updated, err := s.repo.Update(ctx, b)
	return updated, mapBenefitErr(err)
}

func (s *BenefitService) Get(ctx context.Context, id int64) (*model.Benefit, error) {
	b, err := s.repo.GetByID(ctx, id)
	return b, mapBenefitErr(err)
}

func (s *BenefitService) List(ctx context.Context) ([]*model.Benefit, error) {
	return s.repo.List(ctx)
}

func (s *BenefitService) Delete(ctx context.Context, id int64) error {
	return mapBenefitErr(s.repo.Delete(ctx, id))
}

func mapBenefitErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, repository.ErrBenefitNotFound) {
		return ErrBenefitNotFound
	}
	return err
}
