package http

import (
	"net/http"
	"time"

	"github.com/conexpo/registra/internal/gateway/domain"
	"github.com/conexpo/registra/internal/gateway/session"
	"github.com/conexpo/registra/pkg/httpx"
)

// RequireSession gates API routes on a readable session cookie. The decoded
// identity lands in the request context for rate limiting and role checks.
// Token validity is not checked here: the remote API is the authority, and
// the upstream client recovers from expiry transparently.
func RequireSession(opts session.Options) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookies := session.Bind(w, r, opts)

			sess := cookies.Session()
			if sess == nil || !cookies.HasToken() {
				httpx.WriteMessage(w, http.StatusUnauthorized, "authentication required")
				return
			}
			if sess.Expired(time.Now()) {
				httpx.WriteMessage(w, http.StatusUnauthorized, "session expired, sign in again")
				return
			}

			ctx := httpx.WithUser(r.Context(), sess.User.ID, sess.User.Role.String())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole allows only the listed roles past. It assumes RequireSession
// already ran.
func RequireRole(roles ...domain.Role) httpx.Middleware {
	allowed := make(map[domain.Role]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, _ := domain.ParseRole(httpx.RoleFromCtx(r.Context()))
			if _, ok := allowed[role]; !ok {
				httpx.WriteMessage(w, http.StatusForbidden, "insufficient permissions")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
