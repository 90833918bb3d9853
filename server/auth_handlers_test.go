package server_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jdelaney/go-task-server/server"
)

func findCookie(t *testing.T, resp *http.Response, name string) *http.Cookie {
	t.Helper()
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("cookie %q not set in response", name)
	return nil
}

func TestIssueTokenSetsSessionCookie(t *testing.T) {
	f := setupTestFixture(t)

	rec := f.do(request(http.MethodPost, server.RouteJWT, strings.NewReader(`{"email":"a@x.com"}`)))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"success":true}`, rec.Body.String())

	cookie := findCookie(t, rec.Result(), cookieName)
	require.NotEmpty(t, cookie.Value)
	require.True(t, cookie.HttpOnly)
	require.True(t, cookie.Secure)
	require.Equal(t, http.SameSiteNoneMode, cookie.SameSite)
	// The cookie deliberately outlives the one hour token inside it.
	require.Equal(t, 24*60*60, cookie.MaxAge)

	claims, err := f.codec.Verify(cookie.Value)
	require.NoError(t, err)
	require.Equal(t, ownerEmail, claims.Email)
}

func TestIssueTokenRejectsBadBody(t *testing.T) {
	f := setupTestFixture(t)

	rec := f.do(request(http.MethodPost, server.RouteJWT, strings.NewReader("{not json")))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogoutClearsSessionCookie(t *testing.T) {
	f := setupTestFixture(t)

	rec := f.do(f.authedRequest(t, http.MethodPost, server.RouteLogout, nil, ownerEmail))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"success":true}`, rec.Body.String())

	cookie := findCookie(t, rec.Result(), cookieName)
	require.Empty(t, cookie.Value)
	require.Less(t, cookie.MaxAge, 0)
}

func TestTokenStaysValidAfterLogout(t *testing.T) {
	f := setupTestFixture(t)

	signed, err := f.codec.Issue(ownerEmail)
	require.NoError(t, err)

	// Logout only instructs the client to drop the cookie; the token itself
	// is still verifiable until its expiry.
	rec := f.do(request(http.MethodPost, server.RouteLogout, nil))
	require.Equal(t, http.StatusOK, rec.Code)

	req := request(http.MethodGet, server.RouteTasks+"?email="+ownerEmail, nil)
	req.AddCookie(&http.Cookie{Name: cookieName, Value: signed})
	rec = f.do(req)
	require.Equal(t, http.StatusOK, rec.Code)
}
