package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/conexpo/registra/internal/gateway/domain"
	"github.com/stretchr/testify/require"
)

func TestLoginDecodesTokensAndUser(t *testing.T) {
	t.Parallel()

	var gotBody map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/users/", r.URL.Path)
		require.Empty(t, r.Header.Get("Authorization"), "login must not carry a bearer token")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"authToken":    "tok-a",
			"refreshToken": "ref-a",
			"user":         map[string]any{"id": "u1", "name": "Ana", "role": "ADMIN"},
		})
	}))
	t.Cleanup(srv.Close)

	result, err := NewClient(srv.URL).Login(context.Background(), "ana@example.com", "secret")
	require.NoError(t, err)
	require.Equal(t, "tok-a", result.AuthToken)
	require.Equal(t, "ref-a", result.RefreshToken)
	require.Equal(t, domain.RoleAdmin, result.User.Role)
	require.Equal(t, map[string]string{"email": "ana@example.com", "password": "secret"}, gotBody)
}

func TestLoginSurfacesServerMessage(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "wrong password"})
	}))
	t.Cleanup(srv.Close)

	_, err := NewClient(srv.URL).Login(context.Background(), "ana@example.com", "nope")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	require.Equal(t, "wrong password", apiErr.Message)
}

func TestRefreshNeverRaises(t *testing.T) {
	t.Parallel()

	t.Run("empty token fails fast without a request", func(t *testing.T) {
		client := NewClient("http://127.0.0.1:1") // would fail if dialed
		tok, ok := client.Refresh(context.Background(), "")
		require.False(t, ok)
		require.Empty(t, tok)
	})

	t.Run("network failure reduces to false", func(t *testing.T) {
		client := NewClient("http://127.0.0.1:1")
		_, ok := client.Refresh(context.Background(), "ref")
		require.False(t, ok)
	})

	t.Run("error status reduces to false", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		t.Cleanup(srv.Close)

		_, ok := NewClient(srv.URL).Refresh(context.Background(), "ref")
		require.False(t, ok)
	})

	t.Run("success returns the new bearer", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			require.Equal(t, "ref-a", body["refreshToken"])
			_ = json.NewEncoder(w).Encode(map[string]string{"authToken": "tok-b"})
		}))
		t.Cleanup(srv.Close)

		tok, ok := NewClient(srv.URL).Refresh(context.Background(), "ref-a")
		require.True(t, ok)
		require.Equal(t, "tok-b", tok)
	})
}
