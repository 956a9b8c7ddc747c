package repository

import (
	"context"
	"errors"

	"github.com/oscahub/benefits-gateway/internal/model"
	"github.com/oscahub/benefits-gateway/pkg/pg"
	"gorm.io/gorm"
)

var ErrApplicationNotFound = errors.New("application not found")

type ApplicationRepository struct {
	*pg.DB
}

func NewApplicationRepository(db *pg.DB) *ApplicationRepository {
	return &ApplicationRepository{
		db,
	}
}

// CreateBatch inserts one PENDING application per senior inside a single
// transaction, so a failing row leaves no half-submitted batch behind.
func (r *ApplicationRepository) CreateBatch(ctx context.Context, benefitID int64, seniorIDs []int64) ([]*model.Application, error) {
	created := make([]*model.Application, 0, len(seniorIDs))

	err := r.WithinTransaction(ctx, func(ctx context.Context) error {
		for _, seniorID := range seniorIDs {
			entity := toApplicationEntity(&model.Application{
				SeniorID:  seniorID,
				BenefitID: benefitID,
				Status:    model.StatusPending,
			})
			if err := r.Write(ctx).Create(entity).Error; err != nil {
				return err
			}
			created = append(created, toApplicationModel(entity))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateStatus sets the workflow status. The rejection reason column is
// written from the given pointer as-is, so passing nil clears it.
func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id int64, status model.Status, rejectionReason *string) (*model.Application, error) {
	res := r.Write(ctx).Model(&ApplicationEntity{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":           string(status),
			"rejection_reason": rejectionReason,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrApplicationNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *ApplicationRepository) UpdateCategory(ctx context.Context, id int64, category model.Category) (*model.Application, error) {
	res := r.Write(ctx).Model(&ApplicationEntity{}).
		Where("id = ?", id).
		Update("category", string(category))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrApplicationNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id int64) (*model.Application, error) {
	var entity ApplicationEntity
	err := r.Read(ctx).
		Where("id = ?", id).
		First(&entity).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return toApplicationModel(&entity), nil
}

func (r *ApplicationRepository) Delete(ctx context.Context, id int64) error {
	res := r.Write(ctx).Delete(&ApplicationEntity{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

// List returns applications joined with their senior (plus documents)
// and benefit (plus requirements), newest first.
func (r *ApplicationRepository) List(ctx context.Context, f model.ApplicationFilter) ([]*model.ApplicationDetail, error) {
	q := r.Read(ctx).Model(&ApplicationEntity{}).
		Preload("Senior.Documents").
		Preload("Senior").
		Preload("Benefit.Requirements").
		Preload("Benefit")

	if f.SeniorID != nil {
		q = q.Where("senior_id = ?", *f.SeniorID)
	}
	if f.BenefitID != nil {
		q = q.Where("benefit_id = ?", *f.BenefitID)
	}
	if len(f.Statuses) > 0 {
		statuses := make([]string, len(f.Statuses))
		for i, s := range f.Statuses {
			statuses[i] = string(s)
		}
		q = q.Where("status IN ?", statuses)
	}

	var entities []*ApplicationEntity
	if err := q.Order("created_at DESC").Find(&entities).Error; err != nil {
		return nil, err
	}
	return toApplicationDetails(entities), nil
}

func (r *ApplicationRepository) CountByStatus(ctx context.Context, status model.Status) (int64, error) {
	var n int64
	err := r.Read(ctx).Model(&ApplicationEntity{}).
		Where("status = ?", string(status)).
		Count(&n).Error
	return n, err
}
