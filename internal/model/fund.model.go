package model

import (
	"errors"
	"time"
)

// GovernmentFund is the single running record of the benefit budget's
// total balance. Exactly one row exists; it is lazily created.
type GovernmentFund struct {
	ID             int64     `json:"id"`
	CurrentBalance float64   `json:"current_balance"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// FundHistory is one addition event against the fund. It snapshots the
// caller-supplied *available* balance before and after the addition,
// which is a separate figure from the fund's total balance.
type FundHistory struct {
	ID              int64     `json:"id"`
	Date            time.Time `json:"date"`
	Amount          float64   `json:"amount"`
	Source          string    `json:"source"`
	Description     string    `json:"description,omitempty"`
	ReceiptFile     *string   `json:"receipt_file,omitempty"`
	PreviousBalance float64   `json:"previous_balance"`
	NewBalance      float64   `json:"new_balance"`
	CreatedAt       time.Time `json:"created_at"`
}

type FundHistoryCreateRequest struct {
	Date             time.Time
	Amount           float64
	Source           string
	Description      string
	AvailableBalance float64
}

func (p FundHistoryCreateRequest) Validate() error {
	if p.Date.IsZero() {
		return errors.New("date is required")
	}
	if p.Amount <= 0 {
		return errors.New("amount must be greater than zero")
	}
	if p.Source == "" {
		return errors.New("source is required")
	}
	return nil
}

// FundHistoryFilter is an inclusive date range over the entry date.
type FundHistoryFilter struct {
	Start *time.Time
	End   *time.Time
}
