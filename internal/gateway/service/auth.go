package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/conexpo/registra/internal/gateway/domain"
	"github.com/conexpo/registra/internal/gateway/session"
	"github.com/conexpo/registra/internal/gateway/store"
	"github.com/conexpo/registra/internal/gateway/upstream"
	"github.com/conexpo/registra/pkg/idx"
	"github.com/conexpo/registra/pkg/slogx"
)

// AuthService orchestrates the session lifecycle: login, silent refresh and
// logout, plus the audit trail for each. Credential verification itself is
// entirely the remote API's job.
type AuthService struct {
	Upstream   *upstream.Client
	Store      store.Store
	SessionTTL time.Duration
}

// Login authenticates against the remote API and, on success, writes the
// three session cookies. The returned user is the remote API's payload,
// passed through for the login page to display.
func (s *AuthService) Login(ctx context.Context, email, password string, cookies *session.Store) (*domain.User, error) {
	result, err := s.Upstream.Login(ctx, email, password)
	if err != nil {
		s.audit(ctx, domain.AuditLoginFailed, "", "remote login rejected")
		return nil, err
	}

	sess := s.buildSession(result)
	if err := cookies.Write(sess, result.AuthToken, result.RefreshToken); err != nil {
		return nil, err
	}

	s.audit(ctx, domain.AuditLogin, result.User.ID, "")
	return &result.User, nil
}

// Refresh runs the silent refresh procedure against the request's cookies.
// On success only the bearer token cookie is rewritten; the session payload
// and refresh token stay as issued at login.
func (s *AuthService) Refresh(ctx context.Context, cookies *session.Store) bool {
	newBearer, ok := s.Upstream.Refresh(ctx, cookies.RefreshToken())
	if !ok {
		s.audit(ctx, domain.AuditRefreshFailed, s.userID(cookies), "")
		return false
	}

	cookies.SetBearerToken(newBearer)
	s.audit(ctx, domain.AuditRefresh, s.userID(cookies), "")
	return true
}

// Logout clears all session cookies. Idempotent: logging out an anonymous
// request is a no-op with the same end state.
func (s *AuthService) Logout(ctx context.Context, cookies *session.Store) {
	userID := s.userID(cookies)
	cookies.Clear()
	if userID != "" {
		s.audit(ctx, domain.AuditLogout, userID, "")
	}
}

// ForceLogout clears cookies after the refresh flow gave up mid-request.
func (s *AuthService) ForceLogout(ctx context.Context, cookies *session.Store) {
	s.audit(ctx, domain.AuditForcedLogout, s.userID(cookies), "refresh failed during request")
	cookies.Clear()
}

// RecentAudit returns up to limit audit events, newest first.
func (s *AuthService) RecentAudit(ctx context.Context, limit int) ([]domain.AuditEvent, error) {
	return s.Store.AuditEvents().ListRecent(ctx, limit)
}

// buildSession derives the session payload from a login result. The bearer
// token's claims carry the authoritative expiry; they are decoded without
// signature verification since the gateway delegates trust to the remote API
// re-validating the token on every call.
func (s *AuthService) buildSession(result *upstream.LoginResult) *domain.Session {
	expires := time.Now().Add(s.ttl()).UTC()

	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(result.AuthToken, &claims); err == nil {
		if claims.ExpiresAt != nil && !claims.ExpiresAt.IsZero() {
			expires = claims.ExpiresAt.Time.UTC()
		}
	}

	role, _ := domain.ParseRole(string(result.User.Role))
	return &domain.Session{
		User:    domain.SessionUser{ID: result.User.ID, Role: role},
		Expires: expires,
	}
}

func (s *AuthService) ttl() time.Duration {
	if s.SessionTTL > 0 {
		return s.SessionTTL
	}
	return domain.DefaultSessionTTL
}

func (s *AuthService) userID(cookies *session.Store) string {
	if sess := cookies.Session(); sess != nil {
		return sess.User.ID
	}
	return ""
}

// audit records one lifecycle event, best effort. Audit failures are logged
// and swallowed: the trail must never break a login.
func (s *AuthService) audit(ctx context.Context, kind domain.AuditKind, userID, detail string) {
	if s.Store == nil {
		return
	}
	ev := domain.AuditEvent{
		ID:        idx.New().String(),
		UserID:    userID,
		Kind:      kind,
		Detail:    detail,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Store.AuditEvents().Insert(ctx, ev); err != nil {
		slogx.FromContext(ctx).Warn("audit insert failed", "kind", kind, "err", err)
	}
}
