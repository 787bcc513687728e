package middleware

import (
	"context"
	"net/http"

	"github.com/BlueMoonStudio/BM-Backend/internal/auth"
	"github.com/BlueMoonStudio/BM-Backend/internal/utils"
)

// TokenVerifier turns a raw session token into verified claims.
type TokenVerifier interface {
	VerifyToken(token string) (utils.SessionClaims, error)
}

// RequireSession gates every mutating endpoint. Missing cookie, bad
// signature, and expired token all produce the same 401 — callers learn
// nothing about why verification failed.
func RequireSession(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(auth.SessionCookieName)
			if err != nil || cookie.Value == "" {
				utils.Error(w, http.StatusUnauthorized, "No autorizado")
				return
			}

			claims, err := verifier.VerifyToken(cookie.Value)
			if err != nil {
				utils.Error(w, http.StatusUnauthorized, "No autorizado")
				return
			}

			ctx := context.WithValue(r.Context(), utils.ContextSessionKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CORS echoes the origin back only if it's on the allow-list from config.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			if _, ok := allowed[origin]; ok {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Vary", "Origin") // important for caches
				w.Header().Set("Access-Control-Allow-Credentials", "true")
				w.Header().Set("Access-Control-Allow-Methods",
					"GET, POST, PUT, PATCH, DELETE, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers",
					"Content-Type, Authorization")
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
