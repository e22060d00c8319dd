package http

import (
	"encoding/json"
	"net/http"

	"github.com/conexpo/registra/internal/gateway/domain"
	"github.com/conexpo/registra/pkg/httpx"
)

// UsersHandler passes account management through to the remote API. Account
// creation happens through login/registration upstream, so only read,
// update and delete are exposed here.
type UsersHandler struct {
	featureHandler
}

func (h *UsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	caller, cookies := h.caller(w, r)
	users, err := caller.ListUsers(r.Context())
	if err != nil {
		writeUpstreamError(r.Context(), w, cookies, h.Auth, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, users)
}

func (h *UsersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	caller, cookies := h.caller(w, r)
	user, err := caller.GetUser(r.Context(), r.PathValue("id"))
	if err != nil {
		writeUpstreamError(r.Context(), w, cookies, h.Auth, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, user)
}

func (h *UsersHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var u domain.User
	if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "invalid user payload")
		return
	}

	caller, cookies := h.caller(w, r)
	updated, err := caller.UpdateUser(r.Context(), r.PathValue("id"), u)
	if err != nil {
		writeUpstreamError(r.Context(), w, cookies, h.Auth, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, updated)
}

func (h *UsersHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	caller, cookies := h.caller(w, r)
	if err := caller.DeleteUser(r.Context(), r.PathValue("id")); err != nil {
		writeUpstreamError(r.Context(), w, cookies, h.Auth, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, OKResponse{OK: true})
}
