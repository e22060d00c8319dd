package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/conexpo/registra/internal/gateway/domain"
	"github.com/stretchr/testify/require"
)

func testSession() *domain.Session {
	return &domain.Session{
		User:    domain.SessionUser{ID: "u42", Role: domain.RoleAdmin},
		Expires: time.Now().Add(7 * time.Hour).Truncate(time.Second).UTC(),
	}
}

// carryCookies copies the Set-Cookie results of a response onto a fresh
// request, the way a browser would on the next round trip.
func carryCookies(t *testing.T, rec *httptest.ResponseRecorder) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		if c.MaxAge >= 0 {
			req.AddCookie(c)
		}
	}
	return req
}

func TestBindPanicsOutsideRequestContext(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { Bind(nil, httptest.NewRequest(http.MethodGet, "/", nil), Options{}) })
	require.Panics(t, func() { Bind(httptest.NewRecorder(), nil, Options{}) })
}

func TestWriteThenReadRoundTrips(t *testing.T) {
	rec := httptest.NewRecorder()
	st := Bind(rec, httptest.NewRequest(http.MethodPost, "/api/login", nil), Options{})

	want := testSession()
	require.NoError(t, st.Write(want, "bearer-abc", "refresh-xyz"))

	next := carryCookies(t, rec)
	read := Bind(httptest.NewRecorder(), next, Options{})

	got := read.Session()
	require.NotNil(t, got)
	require.Equal(t, want.User, got.User)
	require.True(t, want.Expires.Equal(got.Expires))
	require.Equal(t, "bearer-abc", read.BearerToken())
	require.Equal(t, "refresh-xyz", read.RefreshToken())
	require.True(t, read.HasToken())
}

func TestCookieAttributes(t *testing.T) {
	rec := httptest.NewRecorder()
	st := Bind(rec, httptest.NewRequest(http.MethodPost, "/api/login", nil), Options{
		TTL:    7 * time.Hour,
		Secure: true,
	})
	require.NoError(t, st.Write(testSession(), "a", "r"))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 3)
	for _, c := range cookies {
		require.True(t, c.HttpOnly, "%s must be httpOnly", c.Name)
		require.True(t, c.Secure, "%s must be secure", c.Name)
		require.Equal(t, "/", c.Path)
		require.Equal(t, int((7 * time.Hour).Seconds()), c.MaxAge)
	}
}

func TestSessionCookieIsSealed(t *testing.T) {
	rec := httptest.NewRecorder()
	st := Bind(rec, httptest.NewRequest(http.MethodPost, "/api/login", nil), Options{})
	require.NoError(t, st.Write(testSession(), "a", "r"))

	for _, c := range rec.Result().Cookies() {
		if c.Name == SessionCookie {
			require.NotContains(t, c.Value, "u42")
			require.NotContains(t, c.Value, "ADMIN")
			return
		}
	}
	t.Fatal("session cookie not set")
}

func TestMalformedSessionCookieReadsAsNil(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "not-a-sealed-payload"})

	st := Bind(httptest.NewRecorder(), req, Options{})
	require.Nil(t, st.Session())
}

func TestAbsentCookiesReadAsZeroValues(t *testing.T) {
	st := Bind(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil), Options{})

	require.Nil(t, st.Session())
	require.Empty(t, st.BearerToken())
	require.Empty(t, st.RefreshToken())
	require.False(t, st.HasToken())
}

func TestSetBearerTokenRewritesOnlyThatCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	st := Bind(rec, httptest.NewRequest(http.MethodPost, "/api/refresh", nil), Options{})
	st.SetBearerToken("fresh-token")

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, BearerCookie, cookies[0].Name)
	require.Equal(t, "fresh-token", cookies[0].Value)
}

func TestClearIsIdempotent(t *testing.T) {
	rec := httptest.NewRecorder()
	st := Bind(rec, httptest.NewRequest(http.MethodPost, "/api/logout", nil), Options{})
	st.Clear()
	st.Clear()

	expired := map[string]int{}
	for _, c := range rec.Result().Cookies() {
		require.Equal(t, -1, c.MaxAge, "%s must be expired", c.Name)
		expired[c.Name]++
	}
	require.Len(t, expired, 3)
}
