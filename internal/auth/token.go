package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token verification failure kinds. Callers reject the request on any of
// them; the distinction exists for logging.
var (
	ErrTokenExpired   = errors.New("auth: token expired")
	ErrTokenMalformed = errors.New("auth: token malformed")
	ErrTokenInvalid   = errors.New("auth: token invalid")
)

// Identity is the verified subject of a request.
type Identity struct {
	Email string
}

// Claims carried by issued tokens.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed, time-limited bearer tokens. The
// signing secret is process-wide configuration; it is never logged.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService builds a service signing HS256 tokens valid for ttl.
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue produces a signed token embedding the identity and absolute expiry.
func (s *TokenService) Issue(email string) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify checks signature and expiry and returns the embedded identity.
func (s *TokenService) Verify(tokenStr string) (Identity, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return Identity{}, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenMalformed):
			return Identity{}, ErrTokenMalformed
		default:
			return Identity{}, ErrTokenInvalid
		}
	}
	if !token.Valid || claims.Email == "" {
		return Identity{}, ErrTokenInvalid
	}
	return Identity{Email: claims.Email}, nil
}
