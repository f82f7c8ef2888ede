package services

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// LocalBlobStore implements BlobStore on a local filesystem directory
type LocalBlobStore struct {
	dir string
}

// InitLocalBlobStore initializes the blob store backed by a local
// directory and makes it the process-wide instance
func InitLocalBlobStore(dir string) *LocalBlobStore {
	s := &LocalBlobStore{dir: dir}
	blobStoreInstance = s
	return s
}

// Put writes the blob content to a file inside the store directory
func (s *LocalBlobStore) Put(name string, r io.Reader, contentType string) error {
	if err := validateBlobName(name); err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return fmt.Errorf("failed to create destination file: %w", err)
	}
	defer func() {
		if closeErr := dst.Close(); closeErr != nil {
			log.Printf("warning: failed to close destination file: %v", closeErr)
		}
	}()

	if _, err := io.Copy(dst, r); err != nil {
		return fmt.Errorf("failed to save file: %w", err)
	}
	return nil
}

// Get opens the blob file for reading
func (s *LocalBlobStore) Get(name string) (io.ReadCloser, error) {
	if err := validateBlobName(name); err != nil {
		return nil, err
	}
	f, err := os.Open(filepath.Join(s.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrBlobNotFound
		}
		return nil, fmt.Errorf("failed to open blob: %w", err)
	}
	return f, nil
}

// Delete removes the blob file; a missing file is not an error
func (s *LocalBlobStore) Delete(name string) error {
	if err := validateBlobName(name); err != nil {
		return err
	}
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete blob: %w", err)
	}
	return nil
}

// validateBlobName rejects names that could escape the store directory
func validateBlobName(name string) error {
	if name == "" {
		return fmt.Errorf("blob name is required")
	}
	if strings.Contains(name, "..") || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("invalid blob name %q", name)
	}
	return nil
}
