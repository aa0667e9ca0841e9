package gallery

import (
	"fmt"
	"strings"
)

// ForceMode is the caller's declared overwrite intent, produced only by the
// total parsing functions below.
type ForceMode int

const (
	// NoForce rejects the upload with a conflict when the key is occupied.
	NoForce ForceMode = iota
	// Force overwrites any existing object without a conflict check.
	Force
)

// ParseForceToken maps a string token onto a ForceMode. The vocabulary is
// closed: yes/y/ok/true force the upload, no/n/false and the empty string do
// not, and anything else is ErrInvalidForceToken rather than a silent default.
func ParseForceToken(token string) (ForceMode, error) {
	switch strings.ToLower(token) {
	case "yes", "y", "ok", "true":
		return Force, nil
	case "", "no", "n", "false":
		return NoForce, nil
	}
	return NoForce, fmt.Errorf("%w: %q", ErrInvalidForceToken, token)
}

// NormalizeForce accepts the force field as it arrives in a decoded JSON
// body: a bool, a string token, or absent (nil).
func NormalizeForce(v any) (ForceMode, error) {
	switch t := v.(type) {
	case nil:
		return NoForce, nil
	case bool:
		if t {
			return Force, nil
		}
		return NoForce, nil
	case string:
		return ParseForceToken(t)
	}
	return NoForce, fmt.Errorf("%w: %v", ErrInvalidForceToken, v)
}
