package memory

import (
	"context"
	"sync"

	"github.com/gallerykit/gateway/pkg/gallery"
)

// Log is an in-memory implementation of the gallery.AuditLog interface,
// used in tests and local development.
type Log struct {
	mu     sync.RWMutex
	events []gallery.SignEvent
}

// New creates a new in-memory audit log
func New() *Log {
	return &Log{}
}

// Record appends one sign event.
func (l *Log) Record(ctx context.Context, event gallery.SignEvent) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.events = append(l.events, event)
	return nil
}

// ListAll returns a copy of every recorded event in insertion order.
func (l *Log) ListAll(ctx context.Context) ([]gallery.SignEvent, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	events := make([]gallery.SignEvent, len(l.events))
	copy(events, l.events)
	return events, nil
}
