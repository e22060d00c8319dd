package http

import (
	"encoding/json"
	"net/http"

	"github.com/conexpo/registra/internal/gateway/domain"
	"github.com/conexpo/registra/pkg/httpx"
)

// RegionsHandler passes region CRUD through to the remote API.
type RegionsHandler struct {
	featureHandler
}

func (h *RegionsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	caller, cookies := h.caller(w, r)
	regions, err := caller.ListRegions(r.Context())
	if err != nil {
		writeUpstreamError(r.Context(), w, cookies, h.Auth, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, regions)
}

func (h *RegionsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var rg domain.Region
	if err := json.NewDecoder(r.Body).Decode(&rg); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "invalid region payload")
		return
	}

	caller, cookies := h.caller(w, r)
	created, err := caller.CreateRegion(r.Context(), rg)
	if err != nil {
		writeUpstreamError(r.Context(), w, cookies, h.Auth, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, created)
}

func (h *RegionsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var rg domain.Region
	if err := json.NewDecoder(r.Body).Decode(&rg); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "invalid region payload")
		return
	}

	caller, cookies := h.caller(w, r)
	updated, err := caller.UpdateRegion(r.Context(), r.PathValue("id"), rg)
	if err != nil {
		writeUpstreamError(r.Context(), w, cookies, h.Auth, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, updated)
}

func (h *RegionsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	caller, cookies := h.caller(w, r)
	if err := caller.DeleteRegion(r.Context(), r.PathValue("id")); err != nil {
		writeUpstreamError(r.Context(), w, cookies, h.Auth, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, OKResponse{OK: true})
}
