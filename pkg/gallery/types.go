package gallery

import (
	"fmt"
	"time"
)

// TimestampLayout is the wire format shared by gallery listings and audit
// records.
const TimestampLayout = "2006-01-02T15:04:05"

// galleryZone is the fixed offset every user-facing timestamp is rendered in.
var galleryZone = time.FixedZone("+09:00", 9*60*60)

// FormatTimestamp renders t at the gateway's fixed +09:00 offset.
func FormatTimestamp(t time.Time) string {
	return t.In(galleryZone).Format(TimestampLayout)
}

// SignAction is the kind of sign event a user performed.
type SignAction string

const (
	SignIn  SignAction = "In"
	SignOut SignAction = "Out"
)

// ParseSignAction validates a caller-supplied action token.
func ParseSignAction(s string) (SignAction, error) {
	switch SignAction(s) {
	case SignIn:
		return SignIn, nil
	case SignOut:
		return SignOut, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSignAction, s)
}

// SignEvent is one append-only audit record. Field names follow the persisted
// attribute names of the sign history table.
type SignEvent struct {
	Username  string     `json:"Username"`
	Timestamp string     `json:"Timestamp"`
	Action    SignAction `json:"Action"`
}

// GalleryEntry is the caller-facing projection of one stored object.
type GalleryEntry struct {
	ImageName    string `json:"imageName"`
	Size         int64  `json:"size"`
	Path         string `json:"path"`
	Uploader     string `json:"uploader"`
	LastModified string `json:"lastModified"`
}

// ObjectMeta is a point-in-time snapshot of an object in the blob store. It
// carries no freshness guarantee beyond the instant it was read.
type ObjectMeta struct {
	Key          string
	Size         int64
	LastModified time.Time
}
