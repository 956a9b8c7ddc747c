package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Remark is the lifecycle tag on a senior record, distinct from the
// status of any benefit application they hold.
type Remark string

const (
	RemarkPending  Remark = "PENDING"
	RemarkNew      Remark = "NEW"
	RemarkTransfer Remark = "TRANSFER"
	RemarkUpdated  Remark = "UPDATED"
	RemarkDeceased Remark = "DECEASED"
)

func (r Remark) Valid() bool {
	switch r {
	case RemarkPending, RemarkNew, RemarkTransfer, RemarkUpdated, RemarkDeceased:
		return true
	}
	return false
}

func ParseRemark(s string) (Remark, error) {
	r := Remark(strings.ToUpper(s))
	if !r.Valid() {
		return "", fmt.Errorf("unknown remark %q", s)
	}
	return r, nil
}

type Senior struct {
	ID                 int64      `json:"id"`
	FirstName          string     `json:"first_name"`
	MiddleName         string     `json:"middle_name,omitempty"`
	LastName           string     `json:"last_name"`
	Contact            string     `json:"contact,omitempty"`
	EmergencyContact   string     `json:"emergency_contact,omitempty"`
	EmergencyPhone     string     `json:"emergency_phone,omitempty"`
	Barangay           string     `json:"barangay"`
	Purok              string     `json:"purok,omitempty"`
	Age                string     `json:"age"` // stored as text, see AgeYears
	Gender             string     `json:"gender"`
	PWD                bool       `json:"pwd"`
	LowIncome          bool       `json:"low_income"`
	Remarks            Remark     `json:"remarks"`
	ReleasedAt         *time.Time `json:"released_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
	DeletedAt          *time.Time `json:"deleted_at,omitempty"`
	Documents          []*Document `json:"documents,omitempty"`
}

// AgeYears parses the text age column. The registry has always kept age
// as free text, so this is the single place the parse happens.
func (s *Senior) AgeYears() (int, error) {
	a, err := strconv.Atoi(strings.TrimSpace(s.Age))
	if err != nil {
		return 0, fmt.Errorf("senior %d has unparseable age %q", s.ID, s.Age)
	}
	if a < 0 {
		return 0, fmt.Errorf("senior %d has negative age %q", s.ID, s.Age)
	}
	return a, nil
}

// Released reports whether a release has been recorded, regardless of
// whether the effective date has arrived yet.
func (s *Senior) Released() bool {
	return s.ReleasedAt != nil
}

type SeniorCreateRequest struct {
	FirstName        string
	MiddleName       string
	LastName         string
	Contact          string
	EmergencyContact string
	EmergencyPhone   string
	Barangay         string
	Purok            string
	Age              string
	Gender           string
	PWD              bool
	LowIncome        bool
}

func (p SeniorCreateRequest) Validate() error {
	if strings.TrimSpace(p.FirstName) == "" {
		return errors.New("first_name is required")
	}
	if strings.TrimSpace(p.LastName) == "" {
		return errors.New("last_name is required")
	}
	if strings.TrimSpace(p.Barangay) == "" {
		return errors.New("barangay is required")
	}
	if strings.TrimSpace(p.Gender) == "" {
		return errors.New("gender is required")
	}
	a, err := strconv.Atoi(strings.TrimSpace(p.Age))
	if err != nil || a < 0 {
		return errors.New("age must be a non-negative whole number")
	}
	return nil
}

type SeniorUpdateRequest struct {
	ID int64
	SeniorCreateRequest
	Remarks Remark
}

func (p SeniorUpdateRequest) Validate() error {
	if p.ID == 0 {
		return errors.New("id is required")
	}
	if !p.Remarks.Valid() {
		return fmt.Errorf("unknown remark %q", p.Remarks)
	}
	return p.SeniorCreateRequest.Validate()
}

// SeniorFilter controls registry list queries.
type SeniorFilter struct {
	Barangay *string
	Remarks  *Remark
	Released *bool // nil = both, true = released_at set, false = not set
	Gender   *string
}
