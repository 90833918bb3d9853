package token

import (
	"fmt"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jdelaney/go-task-server/internal/config"
	"github.com/jdelaney/go-task-server/internal/errors"
)

// NowTimeFunc returns the current time. It can be overridden in tests.
var NowTimeFunc = time.Now

// Claims is the identity payload signed into every credential token. The
// email is the only application claim; the rest is standard JWT bookkeeping.
type Claims struct {
	Email string `json:"email"`
	jwtlib.RegisteredClaims
}

// Codec issues and verifies the signed credential tokens carried in the
// session cookie. Signing is symmetric (HS256) with a single process-wide
// secret; there is no revocation list, a leaked token stays valid until its
// natural expiry.
type Codec struct {
	secret []byte
	expiry time.Duration
}

func NewCodec(cfg config.AuthConfig) (*Codec, error) {
	secret := cfg.GetTokenSecret()
	if len(secret) == 0 {
		return nil, fmt.Errorf("token codec requires a signing secret")
	}
	return &Codec{
		secret: secret,
		expiry: cfg.GetTokenExpiry(),
	}, nil
}

// Issue signs an identity claim for the given email with a fixed expiry.
func (c *Codec) Issue(email string) (string, error) {
	now := NowTimeFunc()
	claims := Claims{
		Email: email,
		RegisteredClaims: jwtlib.RegisteredClaims{
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(c.expiry)),
			ID:        uuid.New().String(),
		},
	}

	signed, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify checks the signature and expiry of a raw token and returns the
// embedded claims. Rejection is a normal outcome, not a fault: callers get
// errors.ErrTokenExpired or errors.ErrInvalidToken and decide what to answer.
func (c *Codec) Verify(rawToken string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwtlib.ParseWithClaims(rawToken, claims, func(t *jwtlib.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwtlib.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return c.secret, nil
	}, jwtlib.WithTimeFunc(func() time.Time { return NowTimeFunc() }))

	if err != nil {
		if errors.Is(err, jwtlib.ErrTokenExpired) {
			return nil, errors.ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", errors.ErrInvalidToken, err)
	}
	if !parsed.Valid {
		return nil, errors.ErrInvalidToken
	}
	return claims, nil
}
