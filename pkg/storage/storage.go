package storage

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("stored file not found")

// Store persists uploaded files (receipts, senior documents) outside the
// database, keyed by a generated name.
type Store interface {
	Save(originalName string, r io.Reader) (storedName string, err error)
	Open(storedName string) (io.ReadCloser, error)
	Remove(storedName string) error
}

// DiskStore writes files under a single root directory with uuid names,
// keeping the original extension for content-type sniffing.
type DiskStore struct {
	root string
}

func NewDiskStore(root string) (*DiskStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}
	return &DiskStore{root: root}, nil
}

func (s *DiskStore) Save(originalName string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	name := uuid.New().String() + ext

	f, err := os.Create(filepath.Join(s.root, name))
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return name, nil
}

func (s *DiskStore) Open(storedName string) (io.ReadCloser, error) {
	f, err := os.Open(filepath.Join(s.root, filepath.Base(storedName)))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return f, nil
}

func (s *DiskStore) Remove(storedName string) error {
	err := os.Remove(filepath.Join(s.root, filepath.Base(storedName)))
	if os.IsNotExist(err) {
		return ErrNotFound
	}
	return err
}
