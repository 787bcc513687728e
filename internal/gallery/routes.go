package gallery

import (
	"net/http"

	"github.com/BlueMoonStudio/BM-Backend/internal/middleware"
	"github.com/go-chi/chi/v5"
)

func SetupRoutes(verifier middleware.TokenVerifier) http.Handler {
	r := chi.NewRouter()

	// Public route - the storefront gallery
	r.Get("/", ListPhotos)

	// Admin routes - require a valid session cookie
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireSession(verifier))

		r.Post("/", CreatePhoto)
		r.Delete("/{id}", DeletePhoto)
	})

	return r
}
