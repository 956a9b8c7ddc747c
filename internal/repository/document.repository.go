package repository

import (
	"context"
	"errors"

	"github.com/oscahub/benefits-gateway/internal/model"
	"github.com/oscahub/benefits-gateway/pkg/pg"
	"gorm.io/gorm"
)

var ErrDocumentNotFound = errors.New("document not found")

type DocumentRepository struct {
	*pg.DB
}

func NewDocumentRepository(db *pg.DB) *DocumentRepository {
	return &DocumentRepository{
		db,
	}
}

func (r *DocumentRepository) Create(ctx context.Context, d *model.Document) (*model.Document, error) {
	entity := toDocumentEntity(d)

	if err := r.Write(ctx).Create(entity).Error; err != nil {
		return nil, err
	}
	return toDocumentModel(entity), nil
}

func (r *DocumentRepository) GetByID(ctx context.Context, id int64) (*model.Document, error) {
	var entity DocumentEntity
	err := r.Read(ctx).
		Where("id = ?", id).
		First(&entity).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, err
	}
	return toDocumentModel(&entity), nil
}

func (r *DocumentRepository) ListBySenior(ctx context.Context, seniorID int64) ([]*model.Document, error) {
	var entities []*DocumentEntity
	err := r.Read(ctx).
		Where("senior_id = ?", seniorID).
		Order("uploaded_at DESC").
		Find(&entities).
		Error
	if err != nil {
		return nil, err
	}
	return toDocumentModels(entities), nil
}

// Delete removes the row and returns the stored filename so the caller
// can clean up the file on disk.
func (r *DocumentRepository) Delete(ctx context.Context, id int64) (storedName string, err error) {
	doc, err := r.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	res := r.Write(ctx).Delete(&DocumentEntity{}, id)
	if res.Error != nil {
		return "", res.Error
	}
	if res.RowsAffected == 0 {
		return "", ErrDocumentNotFound
	}
	return doc.StoredName, nil
}
