package server

import "net/http"

// SetTokenCookie binds an issued token to the session cookie. SameSite=None
// because the SPA is served from a different origin, which also forces
// Secure. The max age outlives the token on purpose; the guard rejects the
// stale token inside long before the browser drops the cookie.
func (s *Server) SetTokenCookie(w http.ResponseWriter, signedToken string) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.config.GetCookieName(),
		Value:    signedToken,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
		MaxAge:   int(s.config.GetCookieMaxAge().Seconds()),
	})
}

// ClearTokenCookie instructs the client to drop the session cookie
// immediately, whatever the token inside it still claims. No server-side
// state is touched; there is none.
func (s *Server) ClearTokenCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.config.GetCookieName(),
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
		MaxAge:   -1,
	})
}
