package config

import (
	"os"
	"time"
)

const tokenSecretVar = "ACCESS_TOKEN_SECRET"

type AuthConfig interface {
	GetTokenSecret() []byte
	GetTokenExpiry() time.Duration
	GetCookieName() string
	GetCookieMaxAge() time.Duration
}

type Auth struct{}

var _ AuthConfig = Auth{}

// GetTokenSecret returns the symmetric signing secret. Empty when
// ACCESS_TOKEN_SECRET is unset; the token codec refuses to start without one.
func (Auth) GetTokenSecret() []byte {
	return []byte(os.Getenv(tokenSecretVar))
}

func (Auth) GetTokenExpiry() time.Duration {
	return 1 * time.Hour
}

func (Auth) GetCookieName() string {
	return "token"
}

// GetCookieMaxAge outlives GetTokenExpiry: the browser keeps sending the
// cookie after the token inside it has lapsed, and the guard answers 401
// until the client logs in again.
func (Auth) GetCookieMaxAge() time.Duration {
	return 24 * time.Hour
}
