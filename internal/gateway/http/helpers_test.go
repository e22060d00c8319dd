package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/conexpo/registra/internal/gateway/metrics"
	"github.com/conexpo/registra/internal/gateway/service"
	"github.com/conexpo/registra/internal/gateway/session"
	"github.com/conexpo/registra/internal/gateway/store/drivers/sqlite"
	"github.com/conexpo/registra/internal/gateway/upstream"
	"github.com/conexpo/registra/pkg/slogx"
)

const (
	testEmail    = "ana@example.com"
	testPassword = "hunter2!"
)

// upstreamStub plays the remote registration API for handler tests. Logins
// mint a signed token, refreshes rotate the accepted bearer, and /events
// enforces the bearer so the silent-refresh path can be driven end to end.
type upstreamStub struct {
	srv *httptest.Server

	mu         sync.Mutex
	role       string
	refreshOK  bool
	acceptAll  bool
	validToken string
}

func newUpstreamStub(t *testing.T, role string) *upstreamStub {
	t.Helper()
	s := &upstreamStub{role: role, refreshOK: true, acceptAll: true}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /users/", s.handleLogin)
	mux.HandleFunc("POST /users/refresh", s.handleRefresh)
	mux.HandleFunc("GET /events", s.handleEvents)
	s.srv = httptest.NewServer(mux)
	t.Cleanup(s.srv.Close)

	s.validToken = signedToken(t, time.Now().Add(time.Hour))
	return s
}

func (s *upstreamStub) URL() string { return s.srv.URL }

// expireBearer makes the current bearer stale and controls whether a refresh
// is honoured afterwards.
func (s *upstreamStub) expireBearer(refreshOK bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.acceptAll = false
	s.refreshOK = refreshOK
	s.validToken = "tok-refreshed"
}

func (s *upstreamStub) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	_ = json.NewDecoder(r.Body).Decode(&req)

	if req.Email != testEmail || req.Password != testPassword {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "invalid credentials"})
		return
	}

	s.mu.Lock()
	token := s.validToken
	role := s.role
	s.mu.Unlock()

	_ = json.NewEncoder(w).Encode(map[string]any{
		"authToken":    token,
		"refreshToken": "ref-1",
		"user":         map[string]any{"id": "u1", "name": "Ana", "email": testEmail, "role": role},
	})
}

func (s *upstreamStub) handleRefresh(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	ok := s.refreshOK
	token := s.validToken
	s.mu.Unlock()

	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "refresh token revoked"})
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]string{"authToken": token})
}

func (s *upstreamStub) handleEvents(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	acceptAll := s.acceptAll
	valid := "Bearer " + s.validToken
	s.mu.Unlock()

	got := r.Header.Get("Authorization")
	if got == "" || (!acceptAll && got != valid) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "token expired"})
		return
	}
	_ = json.NewEncoder(w).Encode([]map[string]any{{"id": "ev1", "name": "ConExpo 2026"}})
}

func signedToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "u1",
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})
	signed, err := token.SignedString([]byte("remote-api-secret"))
	require.NoError(t, err)
	return signed
}

func newTestRouter(t *testing.T, upstreamURL string) *Router {
	t.Helper()

	st, err := sqlite.NewStore("file:" + t.TempDir() + "/audit.db?_busy_timeout=5000")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	up := upstream.NewClient(upstreamURL)
	logger := slogx.New(slogx.Config{Service: "gateway-test", Format: "text", Level: "error"})

	router := NewRouter(session.Options{TTL: time.Hour}, "test", st, up, logger)
	router.AuthService = &service.AuthService{Upstream: up, Store: st}
	router.Metrics = metrics.New(prometheus.NewRegistry())
	up.Observer = router.Metrics
	router.ApplyRoutes()
	return router
}

// login runs a real login through the router and returns the issued cookies.
func login(t *testing.T, router *Router) []*http.Cookie {
	t.Helper()

	body := `{"email":"` + testEmail + `","password":"` + testPassword + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	return cookies
}

func withCookies(req *http.Request, cookies []*http.Cookie) *http.Request {
	for _, c := range cookies {
		if c.MaxAge >= 0 {
			req.AddCookie(c)
		}
	}
	return req
}

func cookieByName(cookies []*http.Cookie, name string) *http.Cookie {
	for _, c := range cookies {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(rec.Body).Decode(out))
}
