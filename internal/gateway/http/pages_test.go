package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPagesAnonymousAccess(t *testing.T) {
	t.Parallel()
	stub := newUpstreamStub(t, "USER")
	router := newTestRouter(t, stub.URL())

	t.Run("public paths serve the shell", func(t *testing.T) {
		for _, path := range []string{"/", "/login", "/register"} {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code, "path %s", path)
			require.Contains(t, rec.Header().Get("Content-Type"), "text/html")
			require.Contains(t, rec.Body.String(), `<div id="app">`)
		}
	})

	t.Run("private paths redirect to login", func(t *testing.T) {
		for _, path := range []string{"/user/", "/admin/dashboard", "/super/settings", "/anything"} {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			require.Equal(t, http.StatusFound, rec.Code, "path %s", path)
			require.Equal(t, "/login", rec.Header().Get("Location"))
		}
	})
}

func TestPagesAuthenticatedRouting(t *testing.T) {
	t.Parallel()
	stub := newUpstreamStub(t, "USER")
	router := newTestRouter(t, stub.URL())
	cookies := login(t, router)

	t.Run("own area serves the shell", func(t *testing.T) {
		req := withCookies(httptest.NewRequest(http.MethodGet, "/user/tickets", nil), cookies)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `<div id="app">`)
	})

	t.Run("login page bounces to role home", func(t *testing.T) {
		req := withCookies(httptest.NewRequest(http.MethodGet, "/login", nil), cookies)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusFound, rec.Code)
		require.Equal(t, "/user/", rec.Header().Get("Location"))
	})

	t.Run("foreign area bounces to role home", func(t *testing.T) {
		req := withCookies(httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil), cookies)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusFound, rec.Code)
		require.Equal(t, "/user/", rec.Header().Get("Location"))
	})
}

func TestPagesManagerSharesAdminArea(t *testing.T) {
	t.Parallel()
	stub := newUpstreamStub(t, "MANAGER")
	router := newTestRouter(t, stub.URL())
	cookies := login(t, router)

	req := withCookies(httptest.NewRequest(http.MethodGet, "/admin/events", nil), cookies)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

// A tampered session cookie with an intact bearer token must force a fresh
// login, never fall back to a guessed role.
func TestPagesCorruptSessionRedirectsToLogin(t *testing.T) {
	t.Parallel()
	stub := newUpstreamStub(t, "USER")
	router := newTestRouter(t, stub.URL())
	cookies := login(t, router)

	for _, c := range cookies {
		if c.Name == "session" {
			c.Value = "garbage"
		}
	}

	req := withCookies(httptest.NewRequest(http.MethodGet, "/user/", nil), cookies)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/login", rec.Header().Get("Location"))
}
