// Package objectkey maps (owner, image name) pairs onto blob store keys and
// back. The mapping is one-to-one as long as neither segment contains the
// separator, which callers must validate before encoding.
package objectkey

import (
	"errors"
	"fmt"
	"strings"
)

// Prefix is the shared namespace every gallery object lives under.
const Prefix = "gallery"

// ErrMalformedKey indicates a store key that was not produced by Encode.
var ErrMalformedKey = errors.New("malformed gallery key")

// Encode derives the store key for an owner's image.
func Encode(owner, imageName string) string {
	return Prefix + "/" + owner + "/" + imageName
}

// Decode splits a store key back into its owner and image name. Only keys of
// the exact shape gallery/{owner}/{name} with non-empty segments are valid;
// anything else fails loudly instead of misparsing.
func Decode(key string) (owner, imageName string, err error) {
	parts := strings.Split(key, "/")
	if len(parts) != 3 || parts[0] != Prefix || parts[1] == "" || parts[2] == "" {
		return "", "", fmt.Errorf("%w: %q", ErrMalformedKey, key)
	}
	return parts[1], parts[2], nil
}
