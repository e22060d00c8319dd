package domain

import "time"

// DefaultSessionTTL mirrors the lifetime of the bearer tokens the remote API
// issues. Cookies and tokens expire together.
const DefaultSessionTTL = 7 * time.Hour

// SessionUser is the identity subset carried in the session cookie.
type SessionUser struct {
	ID   string `json:"id"`
	Role Role   `json:"role"`
}

// Session is the decoded, server-held summary of the authenticated identity.
// It is distinct from the raw tokens: the gateway trusts it only as far as
// routing decisions go, the remote API re-validates the bearer token on every
// call.
type Session struct {
	User    SessionUser `json:"user"`
	Expires time.Time   `json:"expires"`
}

// Expired reports whether the session's own expiry has passed.
func (s *Session) Expired(now time.Time) bool {
	return !s.Expires.IsZero() && now.After(s.Expires)
}
