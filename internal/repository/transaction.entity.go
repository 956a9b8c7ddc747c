package repository

import (
	"time"

	"github.com/oscahub/benefits-gateway/internal/model"
)

type TransactionEntity struct {
	ID        int64     `db:"id"         gorm:"primaryKey;autoIncrement;column:id"`
	SeniorID  *int64    `db:"senior_id"  gorm:"column:senior_id;index"`
	Amount    float64   `db:"amount"     gorm:"column:amount;not null"`
	Type      string    `db:"type"       gorm:"column:type;not null"`
	Category  *string   `db:"category"   gorm:"column:category"`
	Status    string    `db:"status"     gorm:"column:status;not null;index"`
	CreatedAt time.Time `db:"created_at" gorm:"column:created_at;autoCreateTime"`
}

func (TransactionEntity) TableName() string {
	return "transactions"
}

func toTransactionEntity(m *model.Transaction) *TransactionEntity {
	if m == nil {
		return nil
	}
	var category *string
	if m.Category != nil {
		c := string(*m.Category)
		category = &c
	}
	return &TransactionEntity{
		ID:        m.ID,
		SeniorID:  m.SeniorID,
		Amount:    m.Amount,
		Type:      m.Type,
		Category:  category,
		Status:    string(m.Status),
		CreatedAt: m.CreatedAt,
	}
}

func toTransactionModel(e *TransactionEntity) *model.Transaction {
	if e == nil {
		return nil
	}
	var category *model.Category
	if e.Category != nil {
		c := model.Category(*e.Category)
		category = &c
	}
	return &model.Transaction{
		ID:        e.ID,
		SeniorID:  e.SeniorID,
		Amount:    e.Amount,
		Type:      e.Type,
		Category:  category,
		Status:    model.TransactionStatus(e.Status),
		CreatedAt: e.CreatedAt,
	}
}

func toTransactionModels(entities []*TransactionEntity) []*model.Transaction {
	if entities == nil {
		return nil
	}
	models := make([]*model.Transaction, len(entities))
	for i, e := range entities {
		models[i] = toTransactionModel(e)
	}
	return models
}
