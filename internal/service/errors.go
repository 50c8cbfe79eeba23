package service

import (
	"errors"
	"fmt"
)

var (
	ErrIDRequired      = errors.New("id is required")
	ErrCompanyRequired = errors.New("company is required")
	ErrNotFound        = errors.New("document not found")
	ErrReaderNil       = errors.New("reader is nil")
)

// StorageError wraps a failed object-store operation.
type StorageError struct {
	Op  string
	Key string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s %s: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// SigningError means every signing attempt for a document was exhausted.
// It is a hard failure: an unsigned URL is never returned in its place.
type SigningError struct {
	DocumentID string
	Err        error
}

func (e *SigningError) Error() string {
	return fmt.Sprintf("signing failed for document %s: %v", e.DocumentID, e.Err)
}

func (e *SigningError) Unwrap() error { return e.Err }
