package services

import (
	"bytes"
	"fmt"
	"io"
	"sync"
)

// MockBlobStore is an in-memory BlobStore implementation for testing
type MockBlobStore struct {
	blobs map[string][]byte
	mu    sync.RWMutex

	// PutErr, when set, is returned by every Put call to simulate
	// storage failures
	PutErr error
}

// NewMockBlobStore creates a new mock blob store
func NewMockBlobStore() *MockBlobStore {
	return &MockBlobStore{
		blobs: make(map[string][]byte),
	}
}

// SetAsMockForTesting sets this mock as the global blob store instance
func (m *MockBlobStore) SetAsMockForTesting() {
	SetBlobStore(m)
}

// Put stores the blob content in memory
func (m *MockBlobStore) Put(name string, r io.Reader, contentType string) error {
	if m.PutErr != nil {
		return m.PutErr
	}
	if err := validateBlobName(name); err != nil {
		return err
	}

	content, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("failed to read blob content: %w", err)
	}

	m.mu.Lock()
	m.blobs[name] = content
	m.mu.Unlock()
	return nil
}

// Get returns the stored blob content
func (m *MockBlobStore) Get(name string) (io.ReadCloser, error) {
	m.mu.RLock()
	content, exists := m.blobs[name]
	m.mu.RUnlock()

	if !exists {
		return nil, ErrBlobNotFound
	}
	return io.NopCloser(bytes.NewReader(content)), nil
}

// Delete removes the blob from memory
func (m *MockBlobStore) Delete(name string) error {
	m.mu.Lock()
	delete(m.blobs, name)
	m.mu.Unlock()
	return nil
}

// BlobExists checks if a blob exists in mock storage (for test assertions)
func (m *MockBlobStore) BlobExists(name string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, exists := m.blobs[name]
	return exists
}

// BlobContent returns the stored content of a blob (for test assertions)
func (m *MockBlobStore) BlobContent(name string) []byte {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.blobs[name]
}

// Clear removes all blobs from mock storage
func (m *MockBlobStore) Clear() {
	m.mu.Lock()
	m.blobs = make(map[string][]byte)
	m.mu.Unlock()
}
