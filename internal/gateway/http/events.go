package http

import (
	"encoding/json"
	"net/http"

	"github.com/conexpo/registra/internal/gateway/domain"
	"github.com/conexpo/registra/pkg/httpx"
)

// EventsHandler passes event CRUD through to the remote API.
type EventsHandler struct {
	featureHandler
}

// HandleList godoc
//
//	@Summary	List events
//	@Tags		Events
//	@Produce	json
//	@Success	200	{array}		domain.Event
//	@Failure	401	{object}	MessageResponse
//	@Router		/api/events [get].
func (h *EventsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	caller, cookies := h.caller(w, r)
	events, err := caller.ListEvents(r.Context())
	if err != nil {
		writeUpstreamError(r.Context(), w, cookies, h.Auth, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, events)
}

func (h *EventsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	caller, cookies := h.caller(w, r)
	event, err := caller.GetEvent(r.Context(), r.PathValue("id"))
	if err != nil {
		writeUpstreamError(r.Context(), w, cookies, h.Auth, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, event)
}

func (h *EventsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var ev domain.Event
	if err := json.NewDecoder(r.Body).Decode(&ev); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "invalid event payload")
		return
	}

	caller, cookies := h.caller(w, r)
	created, err := caller.CreateEvent(r.Context(), ev)
	if err != nil {
		writeUpstreamError(r.Context(), w, cookies, h.Auth, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, created)
}

func (h *EventsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var ev domain.Event
	if err := json.NewDecoder(r.Body).Decode(&ev); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "invalid event payload")
		return
	}

	caller, cookies := h.caller(w, r)
	updated, err := caller.UpdateEvent(r.Context(), r.PathValue("id"), ev)
	if err != nil {
		writeUpstreamError(r.Context(), w, cookies, h.Auth, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, updated)
}

func (h *EventsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	caller, cookies := h.caller(w, r)
	if err := caller.DeleteEvent(r.Context(), r.PathValue("id")); err != nil {
		writeUpstreamError(r.Context(), w, cookies, h.Auth, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, OKResponse{OK: true})
}
