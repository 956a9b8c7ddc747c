package repository

import (
	"context"
	"errors"

	"github.com/oscahub/benefits-gateway/internal/model"
	"github.com/oscahub/benefits-gateway/pkg/pg"
	"gorm.io/gorm"
)

var ErrFundHistoryNotFound = errors.New("fund history entry not found")

type FundRepository struct {
	*pg.DB
}

func NewFundRepository(db *pg.DB) *FundRepository {
	return &FundRepository{
		db,
	}
}

// GetFund returns the single fund record, lazily creating it with a
// zero balance the first time anything asks.
func (r *FundRepository) GetFund(ctx context.Context) (*model.GovernmentFund, error) {
	var entity GovernmentFundEntity
	err := r.Read(ctx).First(&entity).Error
	if err == nil {
		return toFundModel(&entity), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	entity = GovernmentFundEntity{CurrentBalance: 0}
	if err := r.Write(ctx).Create(&entity).Error; err != nil {
		return nil, err
	}
	return toFundModel(&entity), nil
}

// SetBalance overwrites the total balance, creating the record with the
// requested value if it does not exist yet.
func (r *FundRepository) SetBalance(ctx context.Context, balance float64) (*model.GovernmentFund, error) {
	var fund *model.GovernmentFund
	err := r.WithinTransaction(ctx, func(ctx context.Context) error {
		var entity GovernmentFundEntity
		err := r.Write(ctx).First(&entity).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			entity = GovernmentFundEntity{CurrentBalance: balance}
			if err := r.Write(ctx).Create(&entity).Error; err != nil {
				return err
			}
			fund = toFundModel(&entity)
			return nil
		}
		if err != nil {
			return err
		}
		res := r.Write(ctx).Model(&GovernmentFundEntity{}).
			Where("id = ?", entity.ID).
			Update("current_balance", balance)
		if res.Error != nil {
			return res.Error
		}
		entity.CurrentBalance = balance
		fund = toFundModel(&entity)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return fund, nil
}

// AddHistory persists an addition event and bumps the fund total by the
// entry amount in the same transaction. The previous/new balance on the
// entry snapshot the caller-supplied available balance, not the fund
// total.
func (r *FundRepository) AddHistory(ctx context.Context, h *model.FundHistory) (*model.FundHistory, error) {
	entity := toFundHistoryEntity(h)

	err := r.WithinTransaction(ctx, func(ctx context.Context) error {
		fund, err := r.GetFund(ctx)
		if err != nil {
			return err
		}
		res := r.Write(ctx).Model(&GovernmentFundEntity{}).
			Where("id = ?", fund.ID).
			Update("current_balance", gorm.Expr("current_balance + ?", entity.Amount))
		if res.Error != nil {
			return res.Error
		}
		return r.Write(ctx).Create(entity).Error
	})
	if err != nil {
		return nil, err
	}
	return toFundHistoryModel(entity), nil
}

// DeleteHistory removes an entry and compensates the fund total by
// subtracting the entry's amount. The total is adjusted, not recomputed
// from the remaining entries.
func (r *FundRepository) DeleteHistory(ctx context.Context, id int64) error {
	return r.WithinTransaction(ctx, func(ctx context.Context) error {
		var entity FundHistoryEntity
		err := r.Write(ctx).Where("id = ?", id).First(&entity).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrFundHistoryNotFound
			}
			return err
		}

		fund, err := r.GetFund(ctx)
		if err != nil {
			return err
		}
		res := r.Write(ctx).Model(&GovernmentFundEntity{}).
			Where("id = ?", fund.ID).
			Update("current_balance", gorm.Expr("current_balance - ?", entity.Amount))
		if res.Error != nil {
			return res.Error
		}

		return r.Write(ctx).Delete(&FundHistoryEntity{}, id).Error
	})
}

func (r *FundRepository) GetHistoryByID(ctx context.Context, id int64) (*model.FundHistory, error) {
	var entity FundHistoryEntity
	err := r.Read(ctx).Where("id = ?", id).First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFundHistoryNotFound
		}
		return nil, err
	}
	return toFundHistoryModel(&entity), nil
}

// ListHistory filters on the entry date, both bounds inclusive, newest
// first.
func (r *FundRepository) ListHistory(ctx context.Context, f model.FundHistoryFilter) ([]*model.FundHistory, error) {
	q := r.Read(ctx).Model(&FundHistoryEntity{})

	if f.Start != nil {
		q = q.Where("date >= ?", *f.Start)
	}
	if f.End != nil {
		q = q.Where("date <= ?", *f.End)
	}

	var entities []*FundHistoryEntity
	if err := q.Order("date DESC").Find(&entities).Error; err != nil {
		return nil, err
	}
	return toFundHistoryModels(entities), nil
}
