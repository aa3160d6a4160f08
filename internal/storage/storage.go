package storage

import (
	"context"
	"io"
)

// Storage abstracts where resume files live. Only a local backend is wired
// today; the interface keeps the seam for an object-store backend.
type Storage interface {
	// Save stores a file at the given path.
	Save(ctx context.Context, path string, reader io.Reader) error

	// Get retrieves a file from the given path.
	Get(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes a file at the given path.
	Delete(ctx context.Context, path string) error

	// Exists checks whether a file exists at the given path.
	Exists(ctx context.Context, path string) (bool, error)
}

// Config holds storage configuration.
type Config struct {
	BasePath string // filesystem root for stored files
	BaseURL  string // public URL base for downloads
}

// NewStorage creates a storage backend from configuration.
func NewStorage(cfg Config) (Storage, error) {
	return NewLocalStorage(cfg)
}
