package services

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/oscahub/benefits-gateway/internal/model"
	"github.com/oscahub/benefits-gateway/internal/repository"
	"github.com/oscahub/benefits-gateway/pkg/logger"
	"github.com/oscahub/benefits-gateway/pkg/storage"
)

var ErrDocumentNotFound = errors.New("document not found")

type DocumentRepository interface {
	Create(ctx context.Context, d *model.Document) (*model.Document, error)
	GetByID(ctx context.Context, id int64) (*model.Document, error)
	ListBySenior(ctx context.Context, seniorID int64) ([]*model.Document, error)
	Delete(ctx context.Context, id int64) (storedName string, err error)
}

type DocumentService struct {
	repo  DocumentRepository
	store storage.Store
}

func NewDocumentService(repo DocumentRepository, store storage.Store) *DocumentService {
	return &DocumentService{
		repo:  repo,
		store: store,
	}
}

// Upload stores the file first, then records the row. A failed insert
// cleans up the stored file.
func (s *DocumentService) Upload(ctx context.Context, p model.DocumentCreateRequest, file io.Reader) (*model.Document, error) {
	if err := p.Validate(); err != nil {
		return nil, invalid(err)
	}

	storedName, err := s.store.Save(p.OriginalName, file)
	if err != nil {
		return nil, fmt.Errorf("store document: %w", err)
	}

	doc := &model.Document{
		SeniorID:      p.SeniorID,
		RequirementID: p.RequirementID,
		Type:          p.Type,
		OriginalName:  p.OriginalName,
		StoredName:    storedName,
		ContentType:   p.ContentType,
	}
	created, err := s.repo.Create(ctx, doc)
	if err != nil {
		if rmErr := s.store.Remove(storedName); rmErr != nil {
			logger.Warn("orphaned upload not removed", "stored_name", storedName, "error", rmErr)
		}
		return nil, err
	}
	return created, nil
}

func (s *DocumentService) ListBySenior(ctx context.Context, seniorID int64) ([]*model.Document, error) {
	return s.repo.ListBySenior(ctx, seniorID)
}

// Open returns the stored file plus its recorded metadata. A row whose
// file has gone missing from disk reads as not found.
func (s *DocumentService) Open(ctx context.Context, id int64) (*model.Document, io.ReadCloser, error) {
	doc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDocumentNotFound) {
			return nil, nil, ErrDocumentNotFound
		}
		return nil, nil, err
	}
	f, err := s.store.Open(doc.StoredName)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil, ErrDocumentNotFound
		}
		return nil, nil, err
	}
	return doc, f, nil
}

// Delete removes the row, then the file best-effort.
func (s *DocumentService) Delete(ctx context.Context, id int64) error {
	storedName, err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDocumentNotFound) {
			return ErrDocumentNotFound
		}
		return err
	}
	if err := s.store.Remove(storedName); err != nil && !errors.Is(err, storage.ErrNotFound) {
		logger.Warn("stored file not removed", "stored_name", storedName, "error", err)
	}
	return nil
}
