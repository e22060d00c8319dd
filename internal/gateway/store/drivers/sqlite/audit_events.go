package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/conexpo/registra/internal/gateway/domain"
)

type auditEventsRepo struct {
	db *sql.DB
}

func (r *auditEventsRepo) Insert(ctx context.Context, ev domain.AuditEvent) error {
	createdAt := ev.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO audit_events (id, user_id, kind, detail, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		ev.ID, ev.UserID, string(ev.Kind), ev.Detail, createdAt,
	)
	return err
}

func (r *auditEventsRepo) ListRecent(ctx context.Context, limit int) ([]domain.AuditEvent, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, kind, detail, created_at
		 FROM audit_events
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []domain.AuditEvent
	for rows.Next() {
		var ev domain.AuditEvent
		var kind string
		if err := rows.Scan(&ev.ID, &ev.UserID, &kind, &ev.Detail, &ev.CreatedAt); err != nil {
			return nil, err
		}
		ev.Kind = domain.AuditKind(kind)
		events = append(events, ev)
	}
	return events, rows.Err()
}
