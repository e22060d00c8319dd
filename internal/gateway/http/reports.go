package http

import (
	"net/http"

	"github.com/conexpo/registra/pkg/httpx"
)

// ReportsHandler serves the per-event payment analysis the remote API
// computes.
type ReportsHandler struct {
	featureHandler
}

// HandlePaymentReport godoc
//
//	@Summary		Event payment report
//	@Description	Returns the aggregated payment report for one event.
//	@Tags			reports
//	@Produce		json
//	@Param			eventId	path		string	true	"Event ID"
//	@Success		200		{object}	domain.PaymentReport
//	@Failure		401		{object}	MessageResponse
//	@Failure		403		{object}	MessageResponse
//	@Router			/api/reports/payments/{eventId} [get]
func (h *ReportsHandler) HandlePaymentReport(w http.ResponseWriter, r *http.Request) {
	caller, cookies := h.caller(w, r)
	report, err := caller.PaymentReport(r.Context(), r.PathValue("eventId"))
	if err != nil {
		writeUpstreamError(r.Context(), w, cookies, h.Auth, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, report)
}
