// Package session is the single owner of the three cookie-backed auth
// artifacts: the decoded session payload, the bearer token and the refresh
// token. Nothing else in the gateway reads or writes these cookies directly.
package session

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/conexpo/registra/internal/gateway/domain"
	"github.com/conexpo/registra/pkg/sealx"
	"github.com/conexpo/registra/pkg/slogx"
)

// Cookie names. The session payload is sealed; the token cookies carry the
// raw opaque strings the remote API issued.
const (
	SessionCookie = "session"
	BearerCookie  = "authToken"
	RefreshCookie = "refreshToken"
)

// Options configure how cookies are issued.
type Options struct {
	// TTL is the max-age of all three cookies. Defaults to
	// domain.DefaultSessionTTL, matching the upstream token lifetime.
	TTL time.Duration
	// Secure marks cookies Secure; enabled outside dev.
	Secure bool
}

// Store reads and writes the auth cookies of a single request/response pair.
type Store struct {
	w    http.ResponseWriter
	r    *http.Request
	opts Options
}

// Bind scopes a Store to one request/response pair. The store only makes
// sense inside a server request; binding without both sides is a programming
// error and panics immediately rather than silently no-opping.
func Bind(w http.ResponseWriter, r *http.Request, opts Options) *Store {
	if w == nil || r == nil {
		panic("session: Bind requires a server request context")
	}
	if opts.TTL <= 0 {
		opts.TTL = domain.DefaultSessionTTL
	}
	return &Store{w: w, r: r, opts: opts}
}

// Session returns the decoded session payload, or nil when the cookie is
// absent, unreadable or malformed. It never returns an error: a broken
// session cookie is indistinguishable from no session.
func (s *Store) Session() *domain.Session {
	c, err := s.r.Cookie(SessionCookie)
	if err != nil || c.Value == "" {
		return nil
	}

	log := slogx.FromContext(s.r.Context())

	raw, err := sealx.Open(c.Value)
	if err != nil {
		log.Warn("session cookie failed to unseal, treating as no session")
		return nil
	}

	var sess domain.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		log.Warn("session cookie malformed, treating as no session")
		return nil
	}
	return &sess
}

// BearerToken returns the bearer token cookie value, or "" when absent.
func (s *Store) BearerToken() string {
	return s.cookieValue(BearerCookie)
}

// RefreshToken returns the refresh token cookie value, or "" when absent.
func (s *Store) RefreshToken() string {
	return s.cookieValue(RefreshCookie)
}

// HasToken reports whether a bearer token cookie is present at all. The
// route guard keys on presence, not validity.
func (s *Store) HasToken() bool {
	return s.BearerToken() != ""
}

// Write sets all three cookies. The session payload is sealed before it
// leaves the process.
func (s *Store) Write(sess *domain.Session, bearerToken, refreshToken string) error {
	payload, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	sealed, err := sealx.Seal(payload)
	if err != nil {
		return err
	}

	s.set(SessionCookie, sealed)
	s.set(BearerCookie, bearerToken)
	s.set(RefreshCookie, refreshToken)
	return nil
}

// SetBearerToken rewrites only the bearer token cookie. The refresh flow
// calls this; session payload and refresh token stay untouched.
func (s *Store) SetBearerToken(token string) {
	s.set(BearerCookie, token)
}

// Clear expires all three cookies. Calling it on an already-clear request is
// a no-op with the same end state.
func (s *Store) Clear() {
	for _, name := range []string{SessionCookie, BearerCookie, RefreshCookie} {
		http.SetCookie(s.w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   s.opts.Secure,
			SameSite: http.SameSiteLaxMode,
		})
	}
}

func (s *Store) set(name, value string) {
	http.SetCookie(s.w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(s.opts.TTL.Seconds()),
		HttpOnly: true,
		Secure:   s.opts.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *Store) cookieValue(name string) string {
	c, err := s.r.Cookie(name)
	if err != nil {
		return ""
	}
	return c.Value
}
