package repository

import (
	"context"
	"errors"

	"github.com/oscahub/benefits-gateway/internal/model"
	"github.com/oscahub/benefits-gateway/pkg/pg"
	"gorm.io/gorm"
)

var ErrBenefitNotFound = errors.New("benefit not found")

type BenefitRepository struct {
	*pg.DB
}

func NewBenefitRepository(db *pg.DB) *BenefitRepository {
	return &BenefitRepository{
		db,
	}
}

func (r *BenefitRepository) Create(ctx context.Context, b *model.Benefit) (*model.Benefit, error) {
	entity := toBenefitEntity(b)

	if err := r.Write(ctx).Create(entity).Error; err != nil {
		return nil, err
	}
	return toBenefitModel(entity), nil
}

// Update rewrites the benefit row and replaces its requirement set.
func (r *BenefitRepository) Update(ctx context.Context, b *model.Benefit) (*model.Benefit, error) {
	err := r.WithinTransaction(ctx, func(ctx context.Context) error {
		res := r.Write(ctx).Model(&BenefitEntity{}).
			Where("id = ?", b.ID).
			Updates(map[string]any{
				"name":        b.Name,
				"description": b.Description,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrBenefitNotFound
		}

		if err := r.Write(ctx).Where("benefit_id = ?", b.ID).Delete(&BenefitRequirementEntity{}).Error; err != nil {
			return err
		}
		for _, req := range b.Requirements {
			entity := &BenefitRequirementEntity{
				BenefitID: b.ID,
				Name:      req.Name,
				Required:  req.Required,
			}
			if err := r.Write(ctx).Create(entity).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, b.ID)
}

func (r *BenefitRepository) GetByID(ctx context.Context, id int64) (*model.Benefit, error) {
	var entity BenefitEntity
	err := r.Read(ctx).
		Preload("Requirements").
		Where("id = ?", id).
		First(&entity).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBenefitNotFound
		}
		return nil, err
	}
	return toBenefitModel(&entity), nil
}

func (r *BenefitRepository) List(ctx context.Context) ([]*model.Benefit, error) {
	var entities []*BenefitEntity
	err := r.Read(ctx).
		Preload("Requirements").
		Order("name ASC").
		Find(&entities).
		Error
	if err != nil {
		return nil, err
	}
	return toBenefitModels(entities), nil
}

func (r *BenefitRepository) Delete(ctx context.Context, id int64) error {
	return r.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := r.Write(ctx).Where("benefit_id = ?", id).Delete(&BenefitRequirementEntity{}).Error; err != nil {
			return err
		}
		res := r.Write(ctx).Delete(&BenefitEntity{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrBenefitNotFound
		}
		return nil
	})
}
