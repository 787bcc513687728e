package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// SetupRoutes mounts login and logout. The whoami check lives at /api/check
// and is wired separately in main.
func SetupRoutes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/login", h.LoginHandler)
	r.Post("/logout", h.LogoutHandler)

	return r
}
