package store

import (
	"context"
	"errors"

	"github.com/conexpo/registra/internal/gateway/domain"
)

var ErrNotFound = errors.New("store: not found")

// Store is the gateway's local data access interface. The gateway keeps no
// registration data of its own; the only thing persisted locally is the auth
// audit trail.
type Store interface {
	AuditEvents() AuditEvents

	ApplyMigrations() error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

type AuditEvents interface {
	// Insert records one audit event.
	Insert(ctx context.Context, ev domain.AuditEvent) error

	// ListRecent returns up to limit events, newest first.
	ListRecent(ctx context.Context, limit int) ([]domain.AuditEvent, error)
}
