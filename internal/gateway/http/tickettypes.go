package http

import (
	"encoding/json"
	"net/http"

	"github.com/conexpo/registra/internal/gateway/domain"
	"github.com/conexpo/registra/pkg/httpx"
)

// TicketTypesHandler manages the inscription categories an event offers.
type TicketTypesHandler struct {
	featureHandler
}

func (h *TicketTypesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	caller, cookies := h.caller(w, r)
	types, err := caller.ListTicketTypes(r.Context())
	if err != nil {
		writeUpstreamError(r.Context(), w, cookies, h.Auth, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, types)
}

func (h *TicketTypesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var tt domain.TicketType
	if err := json.NewDecoder(r.Body).Decode(&tt); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "invalid ticket type payload")
		return
	}

	caller, cookies := h.caller(w, r)
	created, err := caller.CreateTicketType(r.Context(), tt)
	if err != nil {
		writeUpstreamError(r.Context(), w, cookies, h.Auth, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, created)
}

func (h *TicketTypesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var tt domain.TicketType
	if err := json.NewDecoder(r.Body).Decode(&tt); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "invalid ticket type payload")
		return
	}

	caller, cookies := h.caller(w, r)
	updated, err := caller.UpdateTicketType(r.Context(), r.PathValue("id"), tt)
	if err != nil {
		writeUpstreamError(r.Context(), w, cookies, h.Auth, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, updated)
}

func (h *TicketTypesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	caller, cookies := h.caller(w, r)
	if err := caller.DeleteTicketType(r.Context(), r.PathValue("id")); err != nil {
		writeUpstreamError(r.Context(), w, cookies, h.Auth, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, OKResponse{OK: true})
}
