package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/stockroomhq/stockroom-api/models"
)

// Store persists the whole document as a single JSON file. Every request
// goes through a load-mutate-save cycle; there is no partial update API
// and no serialization of concurrent callers.
type Store struct {
	path string
}

var storeInstance *Store

// Init creates the store for the given data file and makes it the
// process-wide instance
func Init(path string) *Store {
	storeInstance = &Store{path: path}
	return storeInstance
}

// Get returns the initialized store instance
func Get() *Store {
	return storeInstance
}

// Set sets the store instance (primarily for testing)
func Set(s *Store) {
	storeInstance = s
}

// Path returns the data file path backing this store
func (s *Store) Path() string {
	return s.path
}

// Load reads the persisted document. A missing or empty data file yields
// a fresh document with empty collections.
func (s *Store) Load() (*models.Document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.NewDocument(), nil
		}
		return nil, fmt.Errorf("failed to read data file: %w", err)
	}
	if len(data) == 0 {
		return models.NewDocument(), nil
	}

	doc := models.NewDocument()
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("failed to parse data file: %w", err)
	}
	if doc.Products == nil {
		doc.Products = []models.Product{}
	}
	if doc.Orders == nil {
		doc.Orders = []models.Order{}
	}
	return doc, nil
}

// Save overwrites the persisted document in full
func (s *Store) Save(doc *models.Document) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write data file: %w", err)
	}
	return nil
}
