package gallery

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gallerykit/gateway/pkg/gallery/objectkey"
)

type service struct {
	store  BlobStore
	audit  AuditLog
	issuer IdentityIssuer
	now    func() time.Time
}

// Option configures the service
type Option func(*service)

// WithBlobStore sets the object storage backend
func WithBlobStore(store BlobStore) Option {
	return func(s *service) {
		s.store = store
	}
}

// WithAuditLog sets the sign history backend
func WithAuditLog(audit AuditLog) Option {
	return func(s *service) {
		s.audit = audit
	}
}

// WithIdentityIssuer sets the identity provider used for registration
func WithIdentityIssuer(issuer IdentityIssuer) Option {
	return func(s *service) {
		s.issuer = issuer
	}
}

// WithClock overrides the time source used to stamp audit events
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		s.now = now
	}
}

// New creates a new gallery service with the given options. A blob store and
// an audit log are required; an identity issuer is only needed when
// RegisterUser is served.
func New(opts ...Option) (Service, error) {
	s := &service{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}

	if s.store == nil {
		return nil, errors.New("blob store is required")
	}
	if s.audit == nil {
		return nil, errors.New("audit log is required")
	}

	return s, nil
}

func (s *service) UploadImage(ctx context.Context, req UploadImageRequest) (*UploadResult, error) {
	if req.ImageName == "" || strings.Contains(req.ImageName, "/") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidImageName, req.ImageName)
	}
	if req.Owner == "" || strings.Contains(req.Owner, "/") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidOwner, req.Owner)
	}

	key := objectkey.Encode(req.Owner, req.ImageName)

	if req.Force == Force {
		if err := s.store.Upload(ctx, key, bytes.NewReader(req.Content)); err != nil {
			slog.Error("Failed to overwrite object", "key", key, "error", err)
			return nil, &StorageError{Op: "put", Key: key, Err: err}
		}
		return &UploadResult{Key: key}, nil
	}

	// Write-if-absent in a single store call when the backend supports it.
	// This closes the window between the existence check and the write.
	if cu, ok := s.store.(ConditionalUploader); ok {
		err := cu.UploadIfAbsent(ctx, key, bytes.NewReader(req.Content))
		switch {
		case err == nil:
			return &UploadResult{Key: key}, nil
		case errors.Is(err, ErrObjectExists):
			return nil, err
		default:
			slog.Error("Failed to store object", "key", key, "error", err)
			return nil, &StorageError{Op: "put", Key: key, Err: err}
		}
	}

	// Check-then-act fallback. The two calls are not atomic: concurrent
	// uploads of the same key can both observe absence and both write.
	// Only a typed not-found counts as absence; any other failure is
	// surfaced instead of being treated as a green light to write.
	_, err := s.store.GetObjectMeta(ctx, key)
	switch {
	case err == nil:
		return nil, fmt.Errorf("%w: %s", ErrObjectExists, key)
	case errors.Is(err, ErrObjectNotFound):
		// proceed
	default:
		slog.Error("Failed to check object existence", "key", key, "error", err)
		return nil, &StorageError{Op: "head", Key: key, Err: err}
	}

	if err := s.store.Upload(ctx, key, bytes.NewReader(req.Content)); err != nil {
		slog.Error("Failed to store object", "key", key, "error", err)
		return nil, &StorageError{Op: "put", Key: key, Err: err}
	}

	return &UploadResult{Key: key}, nil
}

func (s *service) ListImages(ctx context.Context) ([]GalleryEntry, error) {
	metas, err := s.store.List(ctx, objectkey.Prefix+"/")
	if err != nil {
		slog.Error("Failed to list objects", "prefix", objectkey.Prefix, "error", err)
		return nil, &StorageError{Op: "list", Key: objectkey.Prefix, Err: err}
	}

	entries := make([]GalleryEntry, 0, len(metas))
	for _, meta := range metas {
		owner, name, err := objectkey.Decode(meta.Key)
		if err != nil {
			slog.Error("Failed to decode stored key", "key", meta.Key, "error", err)
			return nil, err
		}
		entries = append(entries, GalleryEntry{
			ImageName:    name,
			Size:         meta.Size,
			Path:         meta.Key,
			Uploader:     owner,
			LastModified: FormatTimestamp(meta.LastModified),
		})
	}

	return entries, nil
}

func (s *service) RecordSignAction(ctx context.Context, username string, action SignAction) error {
	if _, err := ParseSignAction(string(action)); err != nil {
		return err
	}

	event := SignEvent{
		Username:  username,
		Timestamp: FormatTimestamp(s.now()),
		Action:    action,
	}
	if err := s.audit.Record(ctx, event); err != nil {
		slog.Error("Failed to record sign action", "username", username, "action", action, "error", err)
		return &AuditError{Op: "record", Err: err}
	}
	return nil
}

func (s *service) ListSignHistory(ctx context.Context) ([]SignEvent, error) {
	events, err := s.audit.ListAll(ctx)
	if err != nil {
		slog.Error("Failed to list sign history", "error", err)
		return nil, &AuditError{Op: "list", Err: err}
	}
	return events, nil
}

func (s *service) RegisterUser(ctx context.Context, req SignUpRequest) error {
	if s.issuer == nil {
		return errors.New("identity issuer is not configured")
	}
	if err := s.issuer.SignUp(ctx, req); err != nil {
		slog.Warn("Sign up failed", "username", req.Username, "error", err)
		return err
	}
	return nil
}
