package storage

import (
	"context"
	"errors"
	"fmt"

	"imprint-hq/imprint/pkg/fingerprint"
)

// ErrNotFound is returned by Get when no record exists for the path.
var ErrNotFound = errors.New("fingerprint record not found")

// Store is the persistence interface for fingerprint records. Records are
// keyed by path: Upsert replaces any existing record for the same path.
type Store interface {
	// Upsert inserts or replaces the record for its path.
	Upsert(ctx context.Context, rec *fingerprint.Record) error

	// Get returns the record for path, or ErrNotFound.
	Get(ctx context.Context, path string) (*fingerprint.Record, error)

	// List returns records matching the options, ordered by path.
	List(ctx context.Context, opts ListOptions) ([]*fingerprint.Record, error)

	// Delete removes the record for path. Deleting a missing path is not
	// an error.
	Delete(ctx context.Context, path string) error

	// Count returns the number of stored records.
	Count(ctx context.Context) (int64, error)

	// Close releases backend resources.
	Close() error
}

// ListOptions filters List results. Zero values mean "no filter".
type ListOptions struct {
	// Kind restricts results to one content-kind label (e.g. "json").
	Kind string

	// PathPrefix restricts results to paths with this prefix.
	PathPrefix string

	// Limit caps the number of returned records; 0 means no cap.
	Limit int
}

// StorageError wraps a backend failure with enough context to log usefully.
type StorageError struct {
	Backend   string // "sqlite", "memory"
	Operation string // "upsert", "get", "list", ...
	Cause     error
}

// Error implements the error interface.
func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error [backend=%s, operation=%s]: %v", e.Backend, e.Operation, e.Cause)
}

// Unwrap returns the underlying cause error.
func (e *StorageError) Unwrap() error {
	return e.Cause
}

// NewStorageError creates a new StorageError.
func NewStorageError(backend, operation string, cause error) *StorageError {
	return &StorageError{
		Backend:   backend,
		Operation: operation,
		Cause:     cause,
	}
}
