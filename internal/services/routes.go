package services

import (
	"net/http"

	"github.com/BlueMoonStudio/BM-Backend/internal/middleware"
	"github.com/go-chi/chi/v5"
)

func SetupRoutes(verifier middleware.TokenVerifier) http.Handler {
	r := chi.NewRouter()

	// Public route - the storefront lists services without a session
	r.Get("/", ListServices)

	// Admin routes - require a valid session cookie
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireSession(verifier))

		r.Post("/", CreateService)
		r.Put("/{id}", UpdateService)
		r.Delete("/{id}", DeleteService)
	})

	return r
}
