package media

import (
	"net/http"

	"github.com/BlueMoonStudio/BM-Backend/internal/middleware"
	"github.com/go-chi/chi/v5"
)

// SetupRoutes mounts the media endpoints. Everything here mutates the hosted
// media library, so the whole router sits behind the session guard.
func SetupRoutes(h *Handler, verifier middleware.TokenVerifier) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequireSession(verifier))

	r.Post("/upload", h.UploadHandler)
	r.Post("/delete", h.DeleteHandler)

	return r
}
