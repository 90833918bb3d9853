package server

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/jdelaney/go-task-server/token"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

// ContextKeyClaims stores the verified identity claims for the request
const ContextKeyClaims ContextKey = "claims"

// RequireAuth is middleware that authenticates the request from the session
// cookie. The token inside the cookie is verified and the decoded claims are
// placed in the request context; a missing cookie or a malformed, tampered or
// expired token short-circuits with 401 before the downstream handler runs.
func (s *Server) RequireAuth() func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(s.config.GetCookieName())
			if err != nil {
				writeJSONError(w, http.StatusUnauthorized, "unauthorized access")
				return
			}

			claims, err := s.codec.Verify(cookie.Value)
			if err != nil {
				log.Err(err).Msg("Rejected credential token")
				writeJSONError(w, http.StatusUnauthorized, "unauthorized access")
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyClaims, claims)
			next(w, r.WithContext(ctx))
		}
	}
}

// ClaimsFromContext returns the identity claims RequireAuth stored for the
// request.
func ClaimsFromContext(ctx context.Context) (*token.Claims, bool) {
	claims, ok := ctx.Value(ContextKeyClaims).(*token.Claims)
	return claims, ok
}

// requireOwner is the ownership boundary every listing/mutating handler
// applies after the guard: the guard proves who the caller is, this proves
// the email they are operating on is their own. Writes 403 and returns false
// on mismatch.
func (s *Server) requireOwner(w http.ResponseWriter, r *http.Request) bool {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok || claims.Email == "" || claims.Email != r.URL.Query().Get("email") {
		writeJSONError(w, http.StatusForbidden, "forbidden access")
		return false
	}
	return true
}
