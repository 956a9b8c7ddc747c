package model

import (
	"errors"
	"time"
)

// Document is an uploaded file attached to a senior, optionally pinned
// to a specific benefit requirement.
type Document struct {
	ID             int64     `json:"id"`
	SeniorID       int64     `json:"senior_id"`
	RequirementID  *int64    `json:"requirement_id,omitempty"`
	Type           string    `json:"type"` // e.g. "valid-id", "birth-certificate", "barangay-clearance"
	OriginalName   string    `json:"original_name"`
	StoredName     string    `json:"stored_name"`
	ContentType    string    `json:"content_type,omitempty"`
	UploadedAt     time.Time `json:"uploaded_at"`
}

type DocumentCreateRequest struct {
	SeniorID      int64
	RequirementID *int64
	Type          string
	OriginalName  string
	ContentType   string
}

func (p DocumentCreateRequest) Validate() error {
	if p.SeniorID == 0 {
		return errors.New("senior_id is required")
	}
	if p.Type == "" {
		return errors.New("type is required")
	}
	if p.OriginalName == "" {
		return errors.New("file is required")
	}
	return nil
}
