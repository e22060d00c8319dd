package gateway_test

import (
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	httpapi "github.com/conexpo/registra/internal/gateway/http"
	"github.com/conexpo/registra/internal/gateway/metrics"
	"github.com/conexpo/registra/internal/gateway/service"
	"github.com/conexpo/registra/internal/gateway/session"
	"github.com/conexpo/registra/internal/gateway/store/drivers/sqlite"
	"github.com/conexpo/registra/internal/gateway/upstream"
	"github.com/conexpo/registra/pkg/slogx"
)

/*
 * End-to-end tests for the gateway. The gateway's only external dependency
 * is the remote registration API, which these tests play in-process; the
 * gateway itself runs behind a real HTTP server and is driven through a
 * cookie-jar client, the same way a browser drives it.
 */

const (
	e2eEmail    = "ana@example.com"
	e2ePassword = "Admin123!"
)

// fakeRegistrationAPI stands in for the remote registration service.
type fakeRegistrationAPI struct {
	srv *httptest.Server

	mu         sync.Mutex
	role       string
	refreshOK  bool
	acceptAll  bool
	validToken string
}

func startFakeRegistrationAPI(t *testing.T, role string) *fakeRegistrationAPI {
	t.Helper()
	api := &fakeRegistrationAPI{role: role, refreshOK: true, acceptAll: true}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "u1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte("remote-api-secret"))
	require.NoError(t, err)
	api.validToken = signed

	mux := http.NewServeMux()
	mux.HandleFunc("POST /users/", api.handleLogin)
	mux.HandleFunc("POST /users/refresh", api.handleRefresh)
	mux.HandleFunc("GET /events", api.bearerGated(func(w http.ResponseWriter) {
		_ = json.NewEncoder(w).Encode([]map[string]any{{"id": "ev1", "name": "ConExpo 2026"}})
	}))
	mux.HandleFunc("GET /regions", api.bearerGated(func(w http.ResponseWriter) {
		_ = json.NewEncoder(w).Encode([]map[string]any{{"id": "rg1", "name": "Nordeste"}})
	}))
	api.srv = httptest.NewServer(mux)
	t.Cleanup(api.srv.Close)
	return api
}

// expireBearer invalidates the bearer the client currently holds; refreshOK
// controls whether the refresh token is still honoured.
func (api *fakeRegistrationAPI) expireBearer(refreshOK bool) {
	api.mu.Lock()
	defer api.mu.Unlock()
	api.acceptAll = false
	api.refreshOK = refreshOK
	api.validToken = "tok-refreshed"
}

func (api *fakeRegistrationAPI) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	_ = json.NewDecoder(r.Body).Decode(&req)

	if req.Email != e2eEmail || req.Password != e2ePassword {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "invalid credentials"})
		return
	}

	api.mu.Lock()
	defer api.mu.Unlock()
	_ = json.NewEncoder(w).Encode(map[string]any{
		"authToken":    api.validToken,
		"refreshToken": "ref-1",
		"user":         map[string]any{"id": "u1", "name": "Ana", "email": e2eEmail, "role": api.role},
	})
}

func (api *fakeRegistrationAPI) handleRefresh(w http.ResponseWriter, r *http.Request) {
	api.mu.Lock()
	defer api.mu.Unlock()

	if !api.refreshOK {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "refresh token revoked"})
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]string{"authToken": api.validToken})
}

func (api *fakeRegistrationAPI) bearerGated(serve func(http.ResponseWriter)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		api.mu.Lock()
		acceptAll := api.acceptAll
		valid := "Bearer " + api.validToken
		api.mu.Unlock()

		got := r.Header.Get("Authorization")
		if got == "" || (!acceptAll && got != valid) {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "token expired"})
			return
		}
		serve(w)
	}
}

// startGateway wires the full gateway and serves it over a real listener.
func startGateway(t *testing.T, upstreamURL string) string {
	t.Helper()

	st, err := sqlite.NewStore("file:" + t.TempDir() + "/gateway.db?_busy_timeout=5000")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	up := upstream.NewClient(upstreamURL)
	m := metrics.New(prometheus.NewRegistry())
	up.Observer = m

	logger := slogx.New(slogx.Config{Service: "gateway-e2e", Format: "text", Level: "error"})

	router := httpapi.NewRouter(session.Options{TTL: time.Hour}, "e2e", st, up, logger)
	router.AuthService = &service.AuthService{Upstream: up, Store: st}
	router.Metrics = m
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv.URL
}

// newBrowser returns an HTTP client that keeps cookies like a browser would.
func newBrowser(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{Jar: jar, Timeout: 10 * time.Second}
}

func postJSON(t *testing.T, client *http.Client, url, body string) *http.Response {
	t.Helper()
	resp, err := client.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func get(t *testing.T, client *http.Client, url string) *http.Response {
	t.Helper()
	resp, err := client.Get(url)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}
