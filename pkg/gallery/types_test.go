package gallery_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/gallerykit/gateway/pkg/gallery"
)

func TestFormatTimestamp(t *testing.T) {
	// 23:30 UTC on the 1st is 08:30 on the 2nd at +09:00.
	in := time.Date(2024, 5, 1, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, "2024-05-02T08:30:00", gallery.FormatTimestamp(in))

	// Already-offset times render identically regardless of source zone.
	seoul := time.FixedZone("KST", 9*60*60)
	assert.Equal(t, "2024-05-02T08:30:00", gallery.FormatTimestamp(in.In(seoul)))
}

func TestParseSignAction(t *testing.T) {
	action, err := gallery.ParseSignAction("In")
	assert.NoError(t, err)
	assert.Equal(t, gallery.SignIn, action)

	action, err = gallery.ParseSignAction("Out")
	assert.NoError(t, err)
	assert.Equal(t, gallery.SignOut, action)

	for _, bad := range []string{"", "in", "out", "IN", "Login"} {
		_, err := gallery.ParseSignAction(bad)
		assert.ErrorIs(t, err, gallery.ErrInvalidSignAction, "action %q", bad)
	}
}
