package storage

import (
	"context"
	"io"
	"time"
)

// FileInfo describes one stored file.
type FileInfo struct {
	Key     string
	Size    int64
	ModTime time.Time
}

// Storage is the file-storage collaborator: it accepts uploaded images and
// hands back stable keys that records carry as picture references. By the
// time a reference reaches the booking workflow the file is durable.
type Storage interface {
	// Save writes the file and returns its storage key.
	Save(ctx context.Context, filename string, reader io.Reader) (string, error)

	// Open returns the file for reading.
	Open(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes a file. Deleting a missing file is not an error.
	Delete(ctx context.Context, key string) error

	// Exists checks if a file exists and returns its size.
	Exists(ctx context.Context, key string) (bool, int64, error)

	// List enumerates all stored files. Used by the orphan cleanup job.
	List(ctx context.Context) ([]FileInfo, error)

	// URL returns the public URL for a stored key.
	URL(key string) string
}
