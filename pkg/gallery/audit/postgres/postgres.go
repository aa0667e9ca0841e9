// Package postgres persists the sign history in PostgreSQL. The table is
// keyed (username, ts) to match the append-only contract: an event is only
// ever inserted, never updated or deleted.
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gallerykit/gateway/pkg/gallery"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS sign_history (
    username TEXT NOT NULL,
    ts       TEXT NOT NULL,
    action   TEXT NOT NULL,
    PRIMARY KEY (username, ts)
)`

// Log is a PostgreSQL implementation of the gallery.AuditLog interface.
type Log struct {
	pool *pgxpool.Pool
}

// New creates a new PostgreSQL audit log backed by the given pool
func New(pool *pgxpool.Pool) *Log {
	return &Log{pool: pool}
}

// EnsureSchema creates the sign history table if it does not exist.
func (l *Log) EnsureSchema(ctx context.Context) error {
	if _, err := l.pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to create sign_history table: %w", err)
	}
	return nil
}

// Record appends one sign event.
func (l *Log) Record(ctx context.Context, event gallery.SignEvent) error {
	_, err := l.pool.Exec(ctx,
		`INSERT INTO sign_history (username, ts, action) VALUES ($1, $2, $3)`,
		event.Username, event.Timestamp, string(event.Action))
	if err != nil {
		return fmt.Errorf("failed to insert sign event: %w", err)
	}
	return nil
}

// ListAll returns every recorded event ordered by timestamp.
func (l *Log) ListAll(ctx context.Context) ([]gallery.SignEvent, error) {
	rows, err := l.pool.Query(ctx,
		`SELECT username, ts, action FROM sign_history ORDER BY ts, username`)
	if err != nil {
		return nil, fmt.Errorf("failed to query sign history: %w", err)
	}
	defer rows.Close()

	var events []gallery.SignEvent
	for rows.Next() {
		var event gallery.SignEvent
		var action string
		if err := rows.Scan(&event.Username, &event.Timestamp, &action); err != nil {
			return nil, fmt.Errorf("failed to scan sign event: %w", err)
		}
		event.Action = gallery.SignAction(action)
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read sign history: %w", err)
	}

	return events, nil
}
