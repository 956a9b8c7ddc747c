package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type TransactionStatus string

const (
	TransactionPending  TransactionStatus = "PENDING"
	TransactionReleased TransactionStatus = "RELEASED"
)

func (s TransactionStatus) Valid() bool {
	return s == TransactionPending || s == TransactionReleased
}

func ParseTransactionStatus(v string) (TransactionStatus, error) {
	s := TransactionStatus(strings.ToUpper(v))
	if !s.Valid() {
		return "", fmt.Errorf("unknown transaction status %q", v)
	}
	return s, nil
}

// Transaction is a report-ledger line item. It is deliberately
// independent from GovernmentFund/FundHistory: the fund record is the
// authoritative balance, transactions only feed report aggregation.
type Transaction struct {
	ID        int64             `json:"id"`
	SeniorID  *int64            `json:"senior_id,omitempty"`
	Amount    float64           `json:"amount"`
	Type      string            `json:"type"` // e.g. "release", "allocation"
	Category  *Category         `json:"category,omitempty"`
	Status    TransactionStatus `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
}

type TransactionCreateRequest struct {
	SeniorID *int64
	Amount   float64
	Type     string
	Category *Category
	Status   TransactionStatus
}

func (p TransactionCreateRequest) Validate() error {
	if p.Amount <= 0 {
		return errors.New("amount must be greater than zero")
	}
	if p.Type == "" {
		return errors.New("type is required")
	}
	if !p.Status.Valid() {
		return fmt.Errorf("unknown transaction status %q", p.Status)
	}
	if p.Category != nil && !p.Category.Valid() {
		return fmt.Errorf("unknown category %q", *p.Category)
	}
	return nil
}

type TransactionFilter struct {
	Status   *TransactionStatus
	Category *Category
	From     *time.Time
	To       *time.Time
}
