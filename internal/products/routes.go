package products

import (
	"net/http"

	"github.com/BlueMoonStudio/BM-Backend/internal/middleware"
	"github.com/go-chi/chi/v5"
)

func SetupRoutes(verifier middleware.TokenVerifier) http.Handler {
	r := chi.NewRouter()

	// Public route - the storefront shop section
	r.Get("/", ListProducts)

	// Admin routes - require a valid session cookie
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireSession(verifier))

		r.Post("/", CreateProduct)
		r.Put("/{id}", UpdateProduct)
		r.Delete("/{id}", DeleteProduct)
	})

	return r
}
