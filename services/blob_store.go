package services

import (
	"errors"
	"io"
)

// ErrBlobNotFound is returned by Get when no blob exists under the name
var ErrBlobNotFound = errors.New("blob not found")

// BlobStore is a put/get-by-name abstraction over uploaded-image storage.
// Route handlers only ever deal in blob names, so the backing store can be
// swapped without changing any route contract.
type BlobStore interface {
	// Put stores the blob content under the given name
	Put(name string, r io.Reader, contentType string) error

	// Get opens the blob stored under the given name. Returns
	// ErrBlobNotFound if no such blob exists.
	Get(name string) (io.ReadCloser, error)

	// Delete removes the blob stored under the given name. Deleting a
	// missing blob is not an error.
	Delete(name string) error
}

var blobStoreInstance BlobStore

// GetBlobStore returns the initialized blob store instance
func GetBlobStore() BlobStore {
	return blobStoreInstance
}

// SetBlobStore sets the blob store instance (primarily for testing)
func SetBlobStore(s BlobStore) {
	blobStoreInstance = s
}
