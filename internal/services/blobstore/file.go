package blobstore

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
)

const blobExt = ".json"

// FileStore keeps each key in its own file under a base directory. Writes go
// to a temporary file that is renamed into place, so a crash never leaves a
// half-written value behind.
type FileStore struct {
	basePath string
}

// NewFileStore creates a file store rooted at basePath
func NewFileStore(basePath string) (*FileStore, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &FileStore{basePath: basePath}, nil
}

// path maps a key to a file name that cannot escape the base directory
func (fs *FileStore) path(key string) string {
	return filepath.Join(fs.basePath, url.PathEscape(key)+blobExt)
}

// Get reads the value for key
func (fs *FileStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := os.ReadFile(fs.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read blob %s: %w", key, err)
	}
	return data, true, nil
}

// Set writes the value for key atomically
func (fs *FileStore) Set(ctx context.Context, key string, value []byte) error {
	tmp, err := os.CreateTemp(fs.basePath, ".blob-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		os.Remove(tmpName) // Clean up on error
		return fmt.Errorf("failed to write blob %s: %w", key, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to sync blob %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close blob %s: %w", key, err)
	}

	if err := os.Rename(tmpName, fs.path(key)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace blob %s: %w", key, err)
	}
	return nil
}

// Delete removes the file for key
func (fs *FileStore) Delete(ctx context.Context, key string) error {
	if err := os.Remove(fs.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete blob %s: %w", key, err)
	}
	return nil
}

// Close is a no-op
func (fs *FileStore) Close() error {
	return nil
}
