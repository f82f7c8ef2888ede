package services

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalBlobStorePutGet(t *testing.T) {
	s := InitLocalBlobStore(t.TempDir())

	content := []byte("fake image bytes")
	require.NoError(t, s.Put("img_test.png", strings.NewReader(string(content)), "image/png"))

	rc, err := s.Get("img_test.png")
	require.NoError(t, err)
	defer rc.Close()

	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestLocalBlobStoreGetMissing(t *testing.T) {
	s := InitLocalBlobStore(t.TempDir())

	_, err := s.Get("img_missing.png")
	assert.ErrorIs(t, err, ErrBlobNotFound)
}

func TestLocalBlobStoreDelete(t *testing.T) {
	s := InitLocalBlobStore(t.TempDir())

	require.NoError(t, s.Put("img_gone.png", strings.NewReader("x"), "image/png"))
	require.NoError(t, s.Delete("img_gone.png"))

	_, err := s.Get("img_gone.png")
	assert.ErrorIs(t, err, ErrBlobNotFound)

	assert.NoError(t, s.Delete("img_gone.png"), "deleting a missing blob should not be an error")
}

func TestLocalBlobStoreCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	s := InitLocalBlobStore(dir)

	require.NoError(t, s.Put("img_a.png", strings.NewReader("x"), "image/png"))
	_, err := os.Stat(filepath.Join(dir, "img_a.png"))
	assert.NoError(t, err, "blob file should exist on disk")
}

func TestLocalBlobStoreRejectsBadNames(t *testing.T) {
	s := InitLocalBlobStore(t.TempDir())

	tests := []struct {
		name     string
		blobName string
	}{
		{"empty name", ""},
		{"parent traversal", "../escape.png"},
		{"forward slash", "nested/escape.png"},
		{"backslash", `nested\escape.png`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, s.Put(tt.blobName, strings.NewReader("x"), "image/png"))
			_, err := s.Get(tt.blobName)
			assert.Error(t, err)
		})
	}
}
