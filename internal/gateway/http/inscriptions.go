package http

import (
	"encoding/json"
	"net/http"

	"github.com/conexpo/registra/internal/gateway/domain"
	"github.com/conexpo/registra/pkg/httpx"
)

// InscriptionsHandler passes individual and group inscriptions through to
// the remote API.
type InscriptionsHandler struct {
	featureHandler
}

func (h *InscriptionsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	caller, cookies := h.caller(w, r)
	inscriptions, err := caller.ListInscriptions(r.Context())
	if err != nil {
		writeUpstreamError(r.Context(), w, cookies, h.Auth, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, inscriptions)
}

func (h *InscriptionsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	caller, cookies := h.caller(w, r)
	inscription, err := caller.GetInscription(r.Context(), r.PathValue("id"))
	if err != nil {
		writeUpstreamError(r.Context(), w, cookies, h.Auth, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, inscription)
}

func (h *InscriptionsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var ins domain.Inscription
	if err := json.NewDecoder(r.Body).Decode(&ins); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "invalid inscription payload")
		return
	}

	caller, cookies := h.caller(w, r)
	created, err := caller.CreateInscription(r.Context(), ins)
	if err != nil {
		writeUpstreamError(r.Context(), w, cookies, h.Auth, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, created)
}

func (h *InscriptionsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var ins domain.Inscription
	if err := json.NewDecoder(r.Body).Decode(&ins); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "invalid inscription payload")
		return
	}

	caller, cookies := h.caller(w, r)
	updated, err := caller.UpdateInscription(r.Context(), r.PathValue("id"), ins)
	if err != nil {
		writeUpstreamError(r.Context(), w, cookies, h.Auth, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, updated)
}

func (h *InscriptionsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	caller, cookies := h.caller(w, r)
	if err := caller.DeleteInscription(r.Context(), r.PathValue("id")); err != nil {
		writeUpstreamError(r.Context(), w, cookies, h.Auth, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, OKResponse{OK: true})
}
