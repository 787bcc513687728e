package utils

import (
	"context"
)

type contextKey string

const ContextSessionKey contextKey = "session"

// SessionClaims is the verified admin identity the session guard places on
// the request context.
type SessionClaims struct {
	UserID   int
	Username string
}

func GetSessionFromContext(ctx context.Context) (SessionClaims, bool) {
	claims, ok := ctx.Value(ContextSessionKey).(SessionClaims)
	return claims, ok
}
