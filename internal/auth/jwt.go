package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Admin sessions live for a week, fixed at issuance. There is no renewal on
// activity and no server-side revocation: a token stays valid until its
// embedded expiry or until the browser drops the cookie.
const sessionTTL = 7 * 24 * time.Hour

var ErrInvalidSession = errors.New("invalid session token")

// Claims is the payload carried inside an admin session token.
type Claims struct {
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Codec mints and verifies signed session tokens. It holds no state beyond
// the shared secret, so concurrent logins just produce independent tokens.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

func NewCodec(secret string) *Codec {
	return &Codec{secret: []byte(secret), ttl: sessionTTL}
}

// Issue signs a new token for the given admin identity.
func (c *Codec) Issue(userID int, username string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// Verify parses the token and checks signature and expiry. A token without
// an exp claim is invalid too, so valid claims always carry an expiry.
// Callers only learn that the token is invalid, never which check failed.
func (c *Codec) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return c.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return nil, ErrInvalidSession
	}

	return claims, nil
}
