// Package storage persists the habit document as a single JSON file and
// normalizes imported documents into the canonical shape.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sandeepkv93/habitd/internal/model"
)

// Store is the persistence port: the UI loads the document once at startup
// and saves it after every mutation. The core never touches storage
// directly.
type Store interface {
	Load() (model.Document, error)
	Save(model.Document) error
}

type FileStore struct {
	path string
}

func NewFileStore(path string) (*FileStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("storage: empty data file path")
	}
	return &FileStore{path: path}, nil
}

func (s *FileStore) Path() string {
	return s.path
}

// Load reads and normalizes the document. A missing or empty file yields a
// fresh default document, not an error.
func (s *FileStore) Load() (model.Document, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.NewDocument(), nil
		}
		return model.Document{}, fmt.Errorf("read %s: %w", s.path, err)
	}
	if strings.TrimSpace(string(raw)) == "" {
		return model.NewDocument(), nil
	}
	return Normalize(raw)
}

// Save writes the document atomically: marshal to a temp file in the same
// directory, then rename over the target.
func (s *FileStore) Save(doc model.Document) error {
	dir := filepath.Dir(s.path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create data dir: %w", err)
		}
	}
	doc.Version = model.CurrentVersion
	doc.ExportedAtISO = ""
	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, append(payload, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	return os.Rename(tmp, s.path)
}
