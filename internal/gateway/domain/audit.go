package domain

import "time"

// AuditKind labels an auth lifecycle event recorded by the gateway.
type AuditKind string

const (
	AuditLogin         AuditKind = "login"
	AuditLoginFailed   AuditKind = "login_failed"
	AuditLogout        AuditKind = "logout"
	AuditRefresh       AuditKind = "refresh"
	AuditRefreshFailed AuditKind = "refresh_failed"
	AuditForcedLogout  AuditKind = "forced_logout"
)

// AuditEvent is one recorded auth lifecycle event. Tokens are never stored;
// Detail carries free-form context such as the failure reason.
type AuditEvent struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"` // empty for failed logins of unknown users
	Kind      AuditKind `json:"kind"`
	Detail    string    `json:"detail,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
