package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/conexpo/registra/internal/gateway/domain"
	"github.com/conexpo/registra/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	st, err := NewStore("file:" + t.TempDir() + "/audit.db?_busy_timeout=5000")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func TestAuditEventsInsertAndList(t *testing.T) {
	st := newTestStore(t)
	repo := st.AuditEvents()
	ctx := context.Background()

	base := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	kinds := []domain.AuditKind{domain.AuditLogin, domain.AuditRefresh, domain.AuditLogout}
	for i, kind := range kinds {
		require.NoError(t, repo.Insert(ctx, domain.AuditEvent{
			ID:        idx.NewAt(base.Add(time.Duration(i) * time.Minute)).String(),
			UserID:    "u1",
			Kind:      kind,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	events, err := repo.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, events, 3)
	require.Equal(t, domain.AuditLogout, events[0].Kind, "newest first")
	require.Equal(t, domain.AuditLogin, events[2].Kind)
}

func TestAuditEventsListRespectsLimit(t *testing.T) {
	st := newTestStore(t)
	repo := st.AuditEvents()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Insert(ctx, domain.AuditEvent{
			ID:   idx.New().String(),
			Kind: domain.AuditLoginFailed,
		}))
	}

	events, err := repo.ListRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, events, 2)
}

func TestAuditEventsEmptyUserIDAllowed(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, st.AuditEvents().Insert(ctx, domain.AuditEvent{
		ID:     idx.New().String(),
		Kind:   domain.AuditLoginFailed,
		Detail: "unknown account",
	}))

	events, err := st.AuditEvents().ListRecent(ctx, 1)
	require.NoError(t, err)
	require.Empty(t, events[0].UserID)
	require.Equal(t, "unknown account", events[0].Detail)
}
