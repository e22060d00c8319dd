package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/conexpo/registra/internal/gateway/service"
	"github.com/conexpo/registra/internal/gateway/session"
	"github.com/conexpo/registra/internal/gateway/upstream"
	"github.com/conexpo/registra/pkg/httpx"
	"github.com/conexpo/registra/pkg/slogx"
)

// writeUpstreamError maps client errors onto HTTP responses. A dead session
// is the hard case: cookies get cleared, the failure is audited, and the
// browser is told to navigate back to the login page. Everything else keeps
// the remote API's status and message.
func writeUpstreamError(ctx context.Context, w http.ResponseWriter, cookies *session.Store, auth *service.AuthService, err error) {
	if errors.Is(err, upstream.ErrSessionExpired) {
		auth.ForceLogout(ctx, cookies)
		httpx.WriteJSON(w, http.StatusUnauthorized, map[string]string{
			"message":  "session expired, sign in again",
			"redirect": "/login",
		})
		return
	}

	var apiErr *upstream.APIError
	if errors.As(err, &apiErr) {
		httpx.WriteMessage(w, apiErr.StatusCode, apiErr.Message)
		return
	}

	slogx.FromContext(ctx).Error("upstream call failed", "err", err)
	httpx.WriteMessage(w, http.StatusBadGateway, "registration service unavailable")
}
