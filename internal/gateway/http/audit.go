package http

import (
	"net/http"
	"strconv"

	"github.com/conexpo/registra/internal/gateway/service"
	"github.com/conexpo/registra/pkg/httpx"
	"github.com/conexpo/registra/pkg/slogx"
)

const defaultAuditLimit = 50

// AuditHandler serves the gateway's own session audit trail. Routed behind
// RequireRole(RoleSuper) so only super users can read it.
type AuditHandler struct {
	Auth *service.AuthService
}

// HandleRecent godoc
//
//	@Summary		Recent session audit events
//	@Description	Lists the most recent login, refresh and logout events recorded by the gateway, newest first.
//	@Tags			audit
//	@Produce		json
//	@Param			limit	query		int	false	"Maximum events to return"	default(50)
//	@Success		200		{array}		domain.AuditEvent
//	@Failure		401		{object}	MessageResponse
//	@Failure		403		{object}	MessageResponse
//	@Router			/api/audit [get]
func (h *AuditHandler) HandleRecent(w http.ResponseWriter, r *http.Request) {
	limit := defaultAuditLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			httpx.WriteMessage(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	events, err := h.Auth.RecentAudit(r.Context(), limit)
	if err != nil {
		slogx.FromContext(r.Context()).Error("audit listing failed", "err", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, "audit trail unavailable")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, events)
}
