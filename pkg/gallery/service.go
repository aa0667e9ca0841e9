package gallery

import "context"

// Service defines the main interface for the gallery gateway.
type Service interface {
	// UploadImage stores an image under the caller's namespace. Without
	// Force it returns an error wrapping ErrObjectExists when the target
	// key is already occupied, leaving the existing object untouched.
	UploadImage(ctx context.Context, req UploadImageRequest) (*UploadResult, error)

	// ListImages returns every stored image across all owners, projected
	// into caller-facing entries in the store's listing order.
	ListImages(ctx context.Context) ([]GalleryEntry, error)

	// RecordSignAction appends a sign-in/out event stamped with the
	// gateway's shared timestamp format.
	RecordSignAction(ctx context.Context, username string, action SignAction) error

	// ListSignHistory returns the full audit trail for all users.
	ListSignHistory(ctx context.Context) ([]SignEvent, error)

	// RegisterUser delegates user registration to the identity provider.
	RegisterUser(ctx context.Context, req SignUpRequest) error
}
