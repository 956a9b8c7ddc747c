package repository

import (
	"context"
	"errors"
	"time"

	"github.com/oscahub/benefits-gateway/internal/model"
	"github.com/oscahub/benefits-gateway/pkg/pg"
	"gorm.io/gorm"
)

var (
	ErrSeniorNotFound    = errors.New("senior not found")
	ErrAlreadyReleased   = errors.New("senior is already released")
	ErrSeniorNotArchived = errors.New("senior is not archived")
)

type SeniorRepository struct {
	*pg.DB
}

func NewSeniorRepository(db *pg.DB) *SeniorRepository {
	return &SeniorRepository{
		db,
	}
}

func (r *SeniorRepository) Create(ctx context.Context, s *model.Senior) (*model.Senior, error) {
	entity := toSeniorEntity(s)

	if err := r.Write(ctx).Create(entity).Error; err != nil {
		return nil, err
	}

	return toSeniorModel(entity), nil
}

func (r *SeniorRepository) Update(ctx context.Context, s *model.Senior) (*model.Senior, error) {
	entity := toSeniorEntity(s)

	res := r.Write(ctx).Model(&SeniorEntity{}).
		Where("id = ? AND deleted_at IS NULL", entity.ID).
		Updates(map[string]any{
			"first_name":        entity.FirstName,
			"middle_name":       entity.MiddleName,
			"last_name":         entity.LastName,
			"contact":           entity.Contact,
			"emergency_contact": entity.EmergencyContact,
			"emergency_phone":   entity.EmergencyPhone,
			"barangay":          entity.Barangay,
			"purok":             entity.Purok,
			"age":               entity.Age,
			"gender":            entity.Gender,
			"pwd":               entity.PWD,
			"low_income":        entity.LowIncome,
			"remarks":           entity.Remarks,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrSeniorNotFound
	}

	return r.GetByID(ctx, entity.ID)
}

func (r *SeniorRepository) GetByID(ctx context.Context, id int64) (*model.Senior, error) {
	var entity SeniorEntity
	err := r.Read(ctx).
		Preload("Documents").
		Where("id = ? AND deleted_at IS NULL", id).
		First(&entity).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSeniorNotFound
		}
		return nil, err
	}
	return toSeniorModel(&entity), nil
}

// List returns active (non-archived) seniors, newest first.
func (r *SeniorRepository) List(ctx context.Context, f model.SeniorFilter) ([]*model.Senior, error) {
	q := r.Read(ctx).Model(&SeniorEntity{}).Where("deleted_at IS NULL")

	if f.Barangay != nil && *f.Barangay != "" {
		q = q.Where("barangay = ?", *f.Barangay)
	}
	if f.Remarks != nil {
		q = q.Where("remarks = ?", string(*f.Remarks))
	}
	if f.Gender != nil && *f.Gender != "" {
		q = q.Where("gender = ?", *f.Gender)
	}
	if f.Released != nil {
		if *f.Released {
			q = q.Where("released_at IS NOT NULL")
		} else {
			q = q.Where("released_at IS NULL")
		}
	}

	var entities []*SeniorEntity
	if err := q.Order("created_at DESC").Find(&entities).Error; err != nil {
		return nil, err
	}
	return toSeniorModels(entities), nil
}

// ListReleased returns every senior with a release on record, newest
// effective date first. Seniors whose effective date is still in the
// future are included; the listing keys on presence, not arrival.
func (r *SeniorRepository) ListReleased(ctx context.Context) ([]*model.Senior, error) {
	var entities []*SeniorEntity
	err := r.Read(ctx).
		Where("deleted_at IS NULL AND released_at IS NOT NULL").
		Order("released_at DESC").
		Find(&entities).
		Error
	if err != nil {
		return nil, err
	}
	return toSeniorModels(entities), nil
}

func (r *SeniorRepository) ListArchived(ctx context.Context) ([]*model.Senior, error) {
	var entities []*SeniorEntity
	err := r.Read(ctx).
		Where("deleted_at IS NOT NULL").
		Order("deleted_at DESC").
		Find(&entities).
		Error
	if err != nil {
		return nil, err
	}
	return toSeniorModels(entities), nil
}

// Archive soft-deletes: the row stays, flagged with a deletion time.
func (r *SeniorRepository) Archive(ctx context.Context, id int64) error {
	now := time.Now()
	res := r.Write(ctx).Model(&SeniorEntity{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", now)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrSeniorNotFound
	}
	return nil
}

func (r *SeniorRepository) Restore(ctx context.Context, id int64) error {
	res := r.Write(ctx).Model(&SeniorEntity{}).
		Where("id = ? AND deleted_at IS NOT NULL", id).
		Update("deleted_at", nil)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrSeniorNotArchived
	}
	return nil
}

// Release stamps the effective release date. The guard on released_at
// makes a second attempt a conflict, and the conditional update keeps
// two concurrent attempts from both winning.
func (r *SeniorRepository) Release(ctx context.Context, id int64, effectiveAt time.Time) (*model.Senior, error) {
	var entity SeniorEntity
	err := r.Write(ctx).
		Where("id = ? AND deleted_at IS NULL", id).
		First(&entity).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSeniorNotFound
		}
		return nil, err
	}

	if entity.ReleasedAt != nil {
		return nil, ErrAlreadyReleased
	}

	res := r.Write(ctx).Model(&SeniorEntity{}).
		Where("id = ? AND released_at IS NULL", id).
		Update("released_at", effectiveAt)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrAlreadyReleased
	}

	return r.GetByID(ctx, id)
}

func (r *SeniorRepository) CountActive(ctx context.Context) (int64, error) {
	var n int64
	err := r.Read(ctx).Model(&SeniorEntity{}).
		Where("deleted_at IS NULL").
		Count(&n).Error
	return n, err
}

func (r *SeniorRepository) CountReleased(ctx context.Context) (int64, error) {
	var n int64
	err := r.Read(ctx).Model(&SeniorEntity{}).
		Where("deleted_at IS NULL AND released_at IS NOT NULL").
		Count(&n).Error
	return n, err
}
