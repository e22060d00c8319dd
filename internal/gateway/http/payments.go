package http

import (
	"net/http"

	"github.com/conexpo/registra/pkg/httpx"
)

// PaymentsHandler exposes the remote payment records read-only. Payments are
// created by the remote API's own checkout flow, never through the gateway.
type PaymentsHandler struct {
	featureHandler
}

func (h *PaymentsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	caller, cookies := h.caller(w, r)
	payments, err := caller.ListPayments(r.Context())
	if err != nil {
		writeUpstreamError(r.Context(), w, cookies, h.Auth, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, payments)
}

func (h *PaymentsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	caller, cookies := h.caller(w, r)
	payment, err := caller.GetPayment(r.Context(), r.PathValue("id"))
	if err != nil {
		writeUpstreamError(r.Context(), w, cookies, h.Auth, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, payment)
}
