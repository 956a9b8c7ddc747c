package model

import (
	"errors"
	"strings"
	"time"
)

type Benefit struct {
	ID           int64                 `json:"id"`
	Name         string                `json:"name"`
	Description  string                `json:"description,omitempty"`
	Requirements []*BenefitRequirement `json:"requirements,omitempty"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
}

// BenefitRequirement is a document the senior must submit for a
// specific benefit.
type BenefitRequirement struct {
	ID        int64  `json:"id"`
	BenefitID int64  `json:"benefit_id"`
	Name      string `json:"name"`
	Required  bool   `json:"required"`
}

type BenefitCreateRequest struct {
	Name         string
	Description  string
	Requirements []string
}

func (p BenefitCreateRequest) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return errors.New("name is required")
	}
	return nil
}

type BenefitUpdateRequest struct {
	ID int64
	BenefitCreateRequest
}

func (p BenefitUpdateRequest) Validate() error {
	if p.ID == 0 {
		return errors.New("id is required")
	}
	return p.BenefitCreateRequest.Validate()
}
