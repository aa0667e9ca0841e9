package gallery

import (
	"context"
	"io"
)

// BlobStore defines the interface for object storage backends.
//
// Download and GetObjectMeta must report a missing object with an error
// wrapping ErrObjectNotFound; any other failure means the object's existence
// is unknown and must not be treated as absence.
type BlobStore interface {
	// Upload writes an object unconditionally, replacing any existing one.
	Upload(ctx context.Context, objectKey string, reader io.Reader) error

	// Download reads an object's content.
	Download(ctx context.Context, objectKey string) (io.ReadCloser, error)

	// GetObjectMeta retrieves metadata for a single object.
	GetObjectMeta(ctx context.Context, objectKey string) (*ObjectMeta, error)

	// List returns a snapshot of every object under the given key prefix,
	// in the backend's listing order.
	List(ctx context.Context, prefix string) ([]ObjectMeta, error)
}

// ConditionalUploader is implemented by backends that support an atomic
// write-if-absent. UploadIfAbsent returns an error wrapping ErrObjectExists
// when the key is already occupied, leaving the existing object untouched.
type ConditionalUploader interface {
	UploadIfAbsent(ctx context.Context, objectKey string, reader io.Reader) error
}

// AuditLog defines the interface for the append-only sign history.
type AuditLog interface {
	// Record appends one sign event. Events are never updated or deleted.
	Record(ctx context.Context, event SignEvent) error

	// ListAll returns every recorded event, ordered by timestamp.
	ListAll(ctx context.Context) ([]SignEvent, error)
}

// IdentityIssuer registers users with the external identity provider.
type IdentityIssuer interface {
	SignUp(ctx context.Context, req SignUpRequest) error
}
