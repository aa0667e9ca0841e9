package objectkey_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gallerykit/gateway/pkg/gallery/objectkey"
)

func TestEncode(t *testing.T) {
	assert.Equal(t, "gallery/alice/cat.png", objectkey.Encode("alice", "cat.png"))
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	pairs := []struct{ owner, name string }{
		{"alice", "cat.png"},
		{"bob", "weekend photo.jpg"},
		{"user-1234", "a"},
	}

	for _, p := range pairs {
		key := objectkey.Encode(p.owner, p.name)
		owner, name, err := objectkey.Decode(key)
		require.NoError(t, err)
		assert.Equal(t, p.owner, owner)
		assert.Equal(t, p.name, name)
	}
}

func TestDecodeMalformed(t *testing.T) {
	keys := []string{
		"",
		"gallery",
		"gallery/",
		"gallery/alice",
		"gallery/alice/",
		"gallery//cat.png",
		"gallery/alice/dir/cat.png",
		"attic/alice/cat.png",
	}

	for _, key := range keys {
		t.Run(key, func(t *testing.T) {
			_, _, err := objectkey.Decode(key)
			assert.ErrorIs(t, err, objectkey.ErrMalformedKey)
		})
	}
}
