// Package guard decides, per request, whether a page path may be served or
// where the browser must be redirected instead. The decision is a pure
// function of (token presence, decoded session, requested path) so it can be
// replayed and table-tested without any HTTP machinery.
package guard

import (
	"strings"

	"github.com/conexpo/registra/internal/gateway/domain"
)

// Action is the outcome of a guard evaluation.
type Action int

const (
	Allow Action = iota
	Redirect
)

// Decision is the guard's verdict. Location is set only for Redirect.
type Decision struct {
	Action   Action
	Location string
}

// LoginPath is where unauthenticated (or unreadable) sessions are sent.
const LoginPath = "/login"

// publicPaths may be served without a token. The login-like entries
// additionally bounce already-authenticated users to their role home.
var publicPaths = map[string]bool{
	"/":         true,
	"/login":    true,
	"/register": true,
}

var loginLikePaths = map[string]bool{
	"/login":    true,
	"/register": true,
}

// ownedPrefixes is the closed list of role areas. A private path under any of
// these belongs to exactly one role's territory.
var ownedPrefixes = []string{"/super", "/admin", "/user"}

func allow() Decision              { return Decision{Action: Allow} }
func redirect(to string) Decision  { return Decision{Action: Redirect, Location: to} }
func isPublic(path string) bool    { return publicPaths[path] }
func isLoginLike(path string) bool { return loginLikePaths[path] }

// Evaluate computes the routing decision for a page request. sess may be nil
// even when hasToken is true: that is the stale/corrupt-cookie case and is
// treated as unauthenticated.
func Evaluate(hasToken bool, sess *domain.Session, path string) Decision {
	if !hasToken {
		if isPublic(path) {
			return allow()
		}
		return redirect(LoginPath)
	}

	if isLoginLike(path) {
		if sess == nil {
			return allow()
		}
		return redirect(sess.User.Role.Home())
	}

	if isPublic(path) {
		return allow()
	}

	// Token present but the session cookie could not be decoded: force a
	// fresh login rather than guessing a role.
	if sess == nil {
		return redirect(LoginPath)
	}

	owned := sess.User.Role.PathPrefix()
	if !hasPrefix(path, owned) {
		return redirect(owned + "/")
	}

	// Invariant: a private path never sits inside two role territories.
	for _, prefix := range ownedPrefixes {
		if prefix != owned && hasPrefix(path, prefix) {
			return redirect(owned + "/")
		}
	}

	return allow()
}

// hasPrefix matches whole path segments: "/user" owns "/user" and "/user/..."
// but not "/userland".
func hasPrefix(path, prefix string) bool {
	if !strings.HasPrefix(path, prefix) {
		return false
	}
	rest := path[len(prefix):]
	return rest == "" || strings.HasPrefix(rest, "/")
}
