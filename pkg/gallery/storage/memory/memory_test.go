package memory_test

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gallerykit/gateway/pkg/gallery"
	"github.com/gallerykit/gateway/pkg/gallery/storage/memory"
)

func TestUploadAndDownload(t *testing.T) {
	ctx := context.Background()
	backend := memory.New()

	require.NoError(t, backend.Upload(ctx, "gallery/alice/cat.png", strings.NewReader("meow")))

	rc, err := backend.Download(ctx, "gallery/alice/cat.png")
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "meow", string(data))
}

func TestDownloadMissingObject(t *testing.T) {
	backend := memory.New()

	_, err := backend.Download(context.Background(), "gallery/alice/missing.png")
	assert.ErrorIs(t, err, gallery.ErrObjectNotFound)
}

func TestGetObjectMeta(t *testing.T) {
	ctx := context.Background()
	backend := memory.New()

	require.NoError(t, backend.Upload(ctx, "gallery/alice/cat.png", strings.NewReader("meow")))

	meta, err := backend.GetObjectMeta(ctx, "gallery/alice/cat.png")
	require.NoError(t, err)
	assert.Equal(t, "gallery/alice/cat.png", meta.Key)
	assert.Equal(t, int64(4), meta.Size)
	assert.False(t, meta.LastModified.IsZero())

	_, err = backend.GetObjectMeta(ctx, "gallery/alice/missing.png")
	assert.ErrorIs(t, err, gallery.ErrObjectNotFound)
}

func TestUploadIfAbsent(t *testing.T) {
	ctx := context.Background()
	backend := memory.New()

	require.NoError(t, backend.UploadIfAbsent(ctx, "gallery/alice/cat.png", strings.NewReader("first")))

	err := backend.UploadIfAbsent(ctx, "gallery/alice/cat.png", strings.NewReader("second"))
	assert.ErrorIs(t, err, gallery.ErrObjectExists)

	rc, err := backend.Download(ctx, "gallery/alice/cat.png")
	require.NoError(t, err)
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "first", string(data))
}

func TestListReturnsPrefixMatchesInKeyOrder(t *testing.T) {
	ctx := context.Background()
	backend := memory.New()

	require.NoError(t, backend.Upload(ctx, "gallery/bob/bird.png", strings.NewReader("b")))
	require.NoError(t, backend.Upload(ctx, "gallery/alice/cat.png", strings.NewReader("a")))
	require.NoError(t, backend.Upload(ctx, "attic/alice/old.png", strings.NewReader("x")))

	metas, err := backend.List(ctx, "gallery/")
	require.NoError(t, err)
	require.Len(t, metas, 2)
	assert.Equal(t, "gallery/alice/cat.png", metas[0].Key)
	assert.Equal(t, "gallery/bob/bird.png", metas[1].Key)
}

func TestListEmptyPrefix(t *testing.T) {
	backend := memory.New()

	metas, err := backend.List(context.Background(), "gallery/")
	require.NoError(t, err)
	assert.Empty(t, metas)
}
