package http

import (
	"encoding/json"
	"net/http"

	"github.com/conexpo/registra/internal/gateway/service"
	"github.com/conexpo/registra/internal/gateway/session"
	"github.com/conexpo/registra/pkg/httpx"
	"github.com/conexpo/registra/pkg/slogx"
)

// AuthHandler serves the session lifecycle endpoints the browser client
// consumes.
type AuthHandler struct {
	Auth    *service.AuthService
	Cookies session.Options
}

// HandleLogin godoc
//
//	@Summary		Sign in
//	@Description	Authenticates against the remote registration API and establishes the cookie session.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			credentials	body		LoginRequest	true	"email and password"
//	@Success		200			{object}	domain.User		"the authenticated user"
//	@Failure		401			{object}	MessageResponse	"invalid credentials"
//	@Router			/api/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" || req.Password == "" {
		httpx.WriteMessage(w, http.StatusBadRequest, "email and password are required")
		return
	}

	cookies := session.Bind(w, r, h.Cookies)
	user, err := h.Auth.Login(ctx, req.Email, req.Password, cookies)
	if err != nil {
		writeUpstreamError(ctx, w, cookies, h.Auth, err)
		return
	}

	slogx.FromContext(ctx).Info("login", "user_id", user.ID, "role", user.Role)
	httpx.WriteJSON(w, http.StatusOK, user)
}

// HandleLogout godoc
//
//	@Summary	Sign out
//	@Tags		Auth
//	@Produce	json
//	@Success	200	{object}	OKResponse
//	@Router		/api/logout [post].
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	cookies := session.Bind(w, r, h.Cookies)
	h.Auth.Logout(r.Context(), cookies)
	httpx.WriteJSON(w, http.StatusOK, OKResponse{OK: true})
}

// HandleRefresh godoc
//
//	@Summary		Silently refresh the bearer token
//	@Description	Exchanges the refresh cookie for a new bearer token cookie. The session payload and refresh token are left untouched.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	OKResponse
//	@Failure		401	{object}	OKResponse	"refresh token absent or rejected"
//	@Router			/api/refresh [post].
func (h *AuthHandler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	cookies := session.Bind(w, r, h.Cookies)
	if !h.Auth.Refresh(r.Context(), cookies) {
		httpx.WriteJSON(w, http.StatusUnauthorized, OKResponse{OK: false})
		return
	}
	httpx.WriteJSON(w, http.StatusOK, OKResponse{OK: true})
}

// HandleSession godoc
//
//	@Summary	Current session role
//	@Tags		Auth
//	@Produce	json
//	@Success	200	{object}	SessionResponse
//	@Failure	401	{object}	SessionResponse	"no valid session"
//	@Router		/api/session [get].
func (h *AuthHandler) HandleSession(w http.ResponseWriter, r *http.Request) {
	cookies := session.Bind(w, r, h.Cookies)

	sess := cookies.Session()
	if sess == nil {
		httpx.WriteJSON(w, http.StatusUnauthorized, SessionResponse{Role: nil})
		return
	}

	role := sess.User.Role.String()
	httpx.WriteJSON(w, http.StatusOK, SessionResponse{Role: &role})
}
