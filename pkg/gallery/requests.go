package gallery

// UploadImageRequest contains parameters for uploading one image.
//
// Owner must come from the authenticated identity of the request, never from
// a caller-supplied body field.
type UploadImageRequest struct {
	Owner     string
	ImageName string
	Content   []byte
	Force     ForceMode
}

// UploadResult reports a completed upload.
type UploadResult struct {
	Key string
}

// SignUpRequest contains parameters for registering a user with the identity
// provider.
type SignUpRequest struct {
	Username string
	Password string
	Name     string
	Email    string
}
