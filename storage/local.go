package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalStorage implements Storage interface for local filesystem.
// Uploaded files must be served under the configured public URL (the
// API server mounts the base path as a static route).
type LocalStorage struct {
	basePath  string
	publicURL string
}

// NewLocalStorage creates a new local storage instance
func NewLocalStorage(basePath, publicURL string) (*LocalStorage, error) {
	// Create base directory if it doesn't exist
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	return &LocalStorage{
		basePath:  basePath,
		publicURL: strings.TrimSuffix(publicURL, "/"),
	}, nil
}

// BasePath returns the directory uploads are written to.
func (s *LocalStorage) BasePath() string {
	return s.basePath
}

// Upload stores a file locally and returns its public URL
func (s *LocalStorage) Upload(ctx context.Context, fileID uuid.UUID, filename string, data io.Reader) (string, error) {
	key := generateStorageKey(fileID, filename)
	fullPath := filepath.Join(s.basePath, key)

	// Create directory structure
	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, data); err != nil {
		os.Remove(fullPath) // Clean up on error
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return s.publicURL + "/" + key, nil
}

// Delete removes a file from local storage
func (s *LocalStorage) Delete(ctx context.Context, key string) error {
	fullPath := filepath.Join(s.basePath, key)

	err := os.Remove(fullPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	return nil
}
