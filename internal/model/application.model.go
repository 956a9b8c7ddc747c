package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Status is the workflow state of a benefit application. PENDING is
// always the initial state; APPROVED and REJECT stay editable by admin,
// there is no enforced terminality.
type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusReject   Status = "REJECT"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusReject:
		return true
	}
	return false
}

func ParseStatus(v string) (Status, error) {
	s := Status(strings.ToUpper(v))
	if !s.Valid() {
		return "", fmt.Errorf("unknown status %q", v)
	}
	return s, nil
}

type Application struct {
	ID              int64     `json:"id"`
	SeniorID        int64     `json:"senior_id"`
	BenefitID       int64     `json:"benefit_id"`
	Status          Status    `json:"status"`
	Category        *Category `json:"category,omitempty"`
	RejectionReason *string   `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ApplicationDetail is the joined read shape: the application with its
// senior (plus documents) and benefit (plus requirements).
type ApplicationDetail struct {
	Application
	Senior  *Senior  `json:"senior,omitempty"`
	Benefit *Benefit `json:"benefit,omitempty"`
}

// ApplicationSubmitRequest creates one PENDING application per selected
// senior for the given benefit.
type ApplicationSubmitRequest struct {
	BenefitID int64
	SeniorIDs []int64
}

func (p ApplicationSubmitRequest) Validate() error {
	if p.BenefitID == 0 {
		return errors.New("benefit_id is required")
	}
	if len(p.SeniorIDs) == 0 {
		return errors.New("at least one senior_id is required")
	}
	for _, id := range p.SeniorIDs {
		if id == 0 {
			return errors.New("senior_ids must not contain zero")
		}
	}
	return nil
}

type ApplicationStatusUpdateRequest struct {
	ApplicationID   int64
	Status          Status
	RejectionReason *string
}

func (p ApplicationStatusUpdateRequest) Validate() error {
	if p.ApplicationID == 0 {
		return errors.New("application_id is required")
	}
	if !p.Status.Valid() {
		return fmt.Errorf("unknown status %q", p.Status)
	}
	return nil
}

type ApplicationCategoryUpdateRequest struct {
	ApplicationID int64
	Category      Category
}

func (p ApplicationCategoryUpdateRequest) Validate() error {
	if p.ApplicationID == 0 {
		return errors.New("application_id is required")
	}
	if !p.Category.Valid() {
		return fmt.Errorf("unknown category %q", p.Category)
	}
	return nil
}

// ApplicationFilter controls list queries.
type ApplicationFilter struct {
	SeniorID  *int64
	BenefitID *int64
	Statuses  []Status
}
