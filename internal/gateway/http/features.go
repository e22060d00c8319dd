package http

import (
	"net/http"

	"github.com/conexpo/registra/internal/gateway/service"
	"github.com/conexpo/registra/internal/gateway/session"
	"github.com/conexpo/registra/internal/gateway/upstream"
)

// featureHandler is the shared base for the typed pass-through endpoints.
// Each request gets its own upstream Caller bound to the request's cookies,
// so the refresh-and-retry contract applies uniformly to every feature.
type featureHandler struct {
	Upstream *upstream.Client
	Auth     *service.AuthService
	Cookies  session.Options
}

func (h *featureHandler) caller(w http.ResponseWriter, r *http.Request) (*upstream.Caller, *session.Store) {
	cookies := session.Bind(w, r, h.Cookies)
	return h.Upstream.WithCredentials(cookies), cookies
}
