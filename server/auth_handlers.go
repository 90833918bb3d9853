package server

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

// issueTokenRequest carries the identity the client wants a token for. Extra
// body fields are ignored; only the email is signed into the claim.
type issueTokenRequest struct {
	Email string `json:"email"`
}

type successResponse struct {
	Success bool `json:"success"`
}

// IssueTokenHandler signs a credential token for the posted identity and
// binds it to the session cookie. There is no password check here: the
// frontend authenticates the user upstream and this endpoint only converts
// that identity into a cookie the API endpoints can verify.
func (s *Server) IssueTokenHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var user issueTokenRequest
		if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
			writeJSONError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		signedToken, err := s.codec.Issue(user.Email)
		if err != nil {
			log.Err(err).Msg("Failed to issue token")
			writeJSONError(w, http.StatusInternalServerError, "internal server error")
			return
		}

		s.SetTokenCookie(w, signedToken)
		writeJSON(w, http.StatusOK, successResponse{Success: true})
	}
}

// LogoutHandler clears the session cookie. The request body is ignored and
// nothing is revoked server-side; a copy of the token stays valid until its
// expiry.
func (s *Server) LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.ClearTokenCookie(w)
		writeJSON(w, http.StatusOK, successResponse{Success: true})
	}
}
