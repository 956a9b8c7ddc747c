package repository

import (
	"time"

	"github.com/oscahub/benefits-gateway/internal/model"
)

type DocumentEntity struct {
	ID            int64     `db:"id"             gorm:"primaryKey;autoIncrement;column:id"`
	SeniorID      int64     `db:"senior_id"      gorm:"column:senior_id;not null;index"`
	RequirementID *int64    `db:"requirement_id" gorm:"column:requirement_id;index"`
	Type          string    `db:"type"           gorm:"column:type;not null"`
	OriginalName  string    `db:"original_name"  gorm:"column:original_name;not null"`
	StoredName    string    `db:"stored_name"    gorm:"column:stored_name;not null"`
	ContentType   string    `db:"content_type"   gorm:"column:content_type"`
	UploadedAt    time.Time `db:"uploaded_at"    gorm:"column:uploaded_at;autoCreateTime"`
}

func (DocumentEntity) TableName() string {
	return "documents"
}

func toDocumentEntity(m *model.Document) *DocumentEntity {
	if m == nil {
		return nil
	}
	return &DocumentEntity{
		ID:            m.ID,
		SeniorID:      m.SeniorID,
		RequirementID: m.RequirementID,
		Type:          m.Type,
		OriginalName:  m.OriginalName,
		StoredName:    m.StoredName,
		ContentType:   m.ContentType,
		UploadedAt:    m.UploadedAt,
	}
}

func toDocumentModel(e *DocumentEntity) *model.Document {
	if e == nil {
		return nil
	}
	return &model.Document{
		ID:            e.ID,
		SeniorID:      e.SeniorID,
		RequirementID: e.RequirementID,
		Type:          e.Type,
		OriginalName:  e.OriginalName,
		StoredName:    e.StoredName,
		ContentType:   e.ContentType,
		UploadedAt:    e.UploadedAt,
	}
}

func toDocumentModels(entities []*DocumentEntity) []*model.Document {
	if entities == nil {
		return nil
	}
	models := make([]*model.Document, len(entities))
	for i, e := range entities {
		models[i] = toDocumentModel(e)
	}
	return models
}
