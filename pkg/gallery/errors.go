package gallery

import (
	"errors"
	"fmt"
)

// Error types
var (
	// ErrObjectNotFound indicates the blob store holds no object for a key.
	// It is internal signalling for the conflict check and is never returned
	// to callers as-is.
	ErrObjectNotFound = errors.New("object not found")

	// ErrObjectExists indicates an upload was rejected because the target
	// key is already occupied and the caller did not force the overwrite.
	ErrObjectExists = errors.New("object already exists")

	// ErrInvalidForceToken indicates a force token outside the supported
	// vocabulary.
	ErrInvalidForceToken = errors.New("invalid force token")

	// ErrInvalidImageName indicates an empty image name or one containing
	// the key namespace separator.
	ErrInvalidImageName = errors.New("invalid image name")

	// ErrInvalidOwner indicates an owner identifier unusable as a key
	// namespace segment.
	ErrInvalidOwner = errors.New("invalid owner")

	// ErrInvalidSignAction indicates a sign action other than In or Out.
	ErrInvalidSignAction = errors.New("invalid sign action")
)

// StorageError represents a blob store failure during an upload or listing
// operation.
type StorageError struct {
	Op  string
	Key string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage operation %s failed for key %s: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// AuditError represents an audit log failure.
type AuditError struct {
	Op  string
	Err error
}

func (e *AuditError) Error() string {
	return fmt.Sprintf("audit operation %s failed: %v", e.Op, e.Err)
}

func (e *AuditError) Unwrap() error {
	return e.Err
}
