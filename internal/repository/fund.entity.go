package repository

import (
	"time"

	"github.com/oscahub/benefits-gateway/internal/model"
)

type GovernmentFundEntity struct {
	ID             int64     `db:"id"              gorm:"primaryKey;autoIncrement;column:id"`
	CurrentBalance float64   `db:"current_balance" gorm:"column:current_balance;not null;default:0"`
	UpdatedAt      time.Time `db:"updated_at"      gorm:"column:updated_at;autoUpdateTime"`
}

func (GovernmentFundEntity) TableName() string {
	return "government_fund"
}

type FundHistoryEntity struct {
	ID              int64     `db:"id"               gorm:"primaryKey;autoIncrement;column:id"`
	Date            time.Time `db:"date"             gorm:"column:date;not null;index"`
	Amount          float64   `db:"amount"           gorm:"column:amount;not null"`
	Source          string    `db:"source"           gorm:"column:source;not null"`
	Description     string    `db:"description"      gorm:"column:description"`
	ReceiptFile     *string   `db:"receipt_file"     gorm:"column:receipt_file"`
	PreviousBalance float64   `db:"previous_balance" gorm:"column:previous_balance;not null"`
	NewBalance      float64   `db:"new_balance"      gorm:"column:new_balance;not null"`
	CreatedAt       time.Time `db:"created_at"       gorm:"column:created_at;autoCreateTime"`
}

func (FundHistoryEntity) TableName() string {
	return "fund_histories"
}

func toFundModel(e *GovernmentFundEntity) *model.GovernmentFund {
	if e == nil {
		return nil
	}
	return &model.GovernmentFund{
		ID:             e.ID,
		CurrentBalance: e.CurrentBalance,
		UpdatedAt:      e.UpdatedAt,
	}
}

func toFundHistoryEntity(m *model.FundHistory) *FundHistoryEntity {
	if m == nil {
		return nil
	}
	return &FundHistoryEntity{
		ID:              m.ID,
		Date:            m.Date,
		Amount:          m.Amount,
		Source:          m.Source,
		Description:     m.Description,
		ReceiptFile:     m.ReceiptFile,
		PreviousBalance: m.PreviousBalance,
		NewBalance:      m.NewBalance,
		CreatedAt:       m.CreatedAt,
	}
}

func toFundHistoryModel(e *FundHistoryEntity) *model.FundHistory {
	if e == nil {
		return nil
	}
	return &model.FundHistory{
		ID:              e.ID,
		Date:            e.Date,
		Amount:          e.Amount,
		Source:          e.Source,
		Description:     e.Description,
		ReceiptFile:     e.ReceiptFile,
		PreviousBalance: e.PreviousBalance,
		NewBalance:      e.NewBalance,
		CreatedAt:       e.CreatedAt,
	}
}

func toFundHistoryModels(entities []*FundHistoryEntity) []*model.FundHistory {
	if entities == nil {
		return nil
	}
	models := make([]*model.FundHistory, len(entities))
	for i, e := range entities {
		models[i] = toFundHistoryModel(e)
	}
	return models
}
