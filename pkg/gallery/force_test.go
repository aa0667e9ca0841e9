package gallery_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gallerykit/gateway/pkg/gallery"
)

func TestParseForceToken(t *testing.T) {
	tests := []struct {
		token   string
		want    gallery.ForceMode
		wantErr bool
	}{
		{token: "yes", want: gallery.Force},
		{token: "YES", want: gallery.Force},
		{token: "y", want: gallery.Force},
		{token: "ok", want: gallery.Force},
		{token: "OK", want: gallery.Force},
		{token: "true", want: gallery.Force},
		{token: "True", want: gallery.Force},
		{token: "TRUE", want: gallery.Force},
		{token: "", want: gallery.NoForce},
		{token: "no", want: gallery.NoForce},
		{token: "NO", want: gallery.NoForce},
		{token: "n", want: gallery.NoForce},
		{token: "false", want: gallery.NoForce},
		{token: "False", want: gallery.NoForce},
		{token: "maybe", wantErr: true},
		{token: "1", wantErr: true},
		{token: "yep", wantErr: true},
	}

	for _, tt := range tests {
		t.Run("token "+tt.token, func(t *testing.T) {
			got, err := gallery.ParseForceToken(tt.token)
			if tt.wantErr {
				assert.ErrorIs(t, err, gallery.ErrInvalidForceToken)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeForce(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		want    gallery.ForceMode
		wantErr bool
	}{
		{name: "absent", value: nil, want: gallery.NoForce},
		{name: "bool true", value: true, want: gallery.Force},
		{name: "bool false", value: false, want: gallery.NoForce},
		{name: "string yes", value: "yes", want: gallery.Force},
		{name: "string no", value: "no", want: gallery.NoForce},
		{name: "unknown token", value: "maybe", wantErr: true},
		{name: "number", value: float64(1), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := gallery.NormalizeForce(tt.value)
			if tt.wantErr {
				assert.ErrorIs(t, err, gallery.ErrInvalidForceToken)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
