package memory

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/gallerykit/gateway/pkg/gallery"
)

// Backend is an in-memory implementation of the gallery.BlobStore interface,
// used in tests and local development. It implements the conditional upload
// contract under a single lock, so UploadIfAbsent is atomic.
type Backend struct {
	mu       sync.RWMutex
	objects  map[string][]byte
	modified map[string]time.Time
	now      func() time.Time
}

// New creates a new in-memory storage backend
func New() *Backend {
	return &Backend{
		objects:  make(map[string][]byte),
		modified: make(map[string]time.Time),
		now:      time.Now,
	}
}

// Upload writes an object, replacing any existing one.
func (b *Backend) Upload(ctx context.Context, objectKey string, reader io.Reader) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.objects[objectKey] = data
	b.modified[objectKey] = b.now()
	return nil
}

// UploadIfAbsent writes an object only when the key is unoccupied.
func (b *Backend) UploadIfAbsent(ctx context.Context, objectKey string, reader io.Reader) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.objects[objectKey]; exists {
		return fmt.Errorf("%w: %s", gallery.ErrObjectExists, objectKey)
	}

	b.objects[objectKey] = data
	b.modified[objectKey] = b.now()
	return nil
}

// Download reads an object's content.
func (b *Backend) Download(ctx context.Context, objectKey string) (io.ReadCloser, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	data, exists := b.objects[objectKey]
	if !exists {
		return nil, fmt.Errorf("%w: %s", gallery.ErrObjectNotFound, objectKey)
	}

	return io.NopCloser(bytes.NewReader(data)), nil
}

// GetObjectMeta retrieves metadata for an object in memory.
func (b *Backend) GetObjectMeta(ctx context.Context, objectKey string) (*gallery.ObjectMeta, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	data, exists := b.objects[objectKey]
	if !exists {
		return nil, fmt.Errorf("%w: %s", gallery.ErrObjectNotFound, objectKey)
	}

	return &gallery.ObjectMeta{
		Key:          objectKey,
		Size:         int64(len(data)),
		LastModified: b.modified[objectKey],
	}, nil
}

// List returns all objects under the prefix in lexicographic key order,
// matching the listing order of S3.
func (b *Backend) List(ctx context.Context, prefix string) ([]gallery.ObjectMeta, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	var metas []gallery.ObjectMeta
	for key, data := range b.objects {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		metas = append(metas, gallery.ObjectMeta{
			Key:          key,
			Size:         int64(len(data)),
			LastModified: b.modified[key],
		})
	}

	sort.Slice(metas, func(i, j int) bool { return metas[i].Key < metas[j].Key })
	return metas, nil
}
