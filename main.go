package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/BlueMoonStudio/BM-Backend/internal/auth"
	"github.com/BlueMoonStudio/BM-Backend/internal/config"
	"github.com/BlueMoonStudio/BM-Backend/internal/db"
	"github.com/BlueMoonStudio/BM-Backend/internal/gallery"
	"github.com/BlueMoonStudio/BM-Backend/internal/media"
	"github.com/BlueMoonStudio/BM-Backend/internal/middleware"
	"github.com/BlueMoonStudio/BM-Backend/internal/products"
	"github.com/BlueMoonStudio/BM-Backend/internal/services"
	"github.com/BlueMoonStudio/BM-Backend/internal/stats"
)

func RootHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintln(w, "Server is up!")
}

func main() {
	_ = godotenv.Load(".env.local")
	cfg := config.Load()
	db.Connect(cfg.DatabaseURL)

	auth.Init()
	services.Init()
	products.Init()
	gallery.Init()

	codec := auth.NewCodec(cfg.JWTSecret)
	cookies := &auth.CookieAdapter{Secure: cfg.IsProduction()}
	authHandler := &auth.Handler{Codec: codec, Cookie: cookies}
	verifier := auth.Verifier{Codec: codec}

	r := chi.NewRouter()
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(middleware.Metrics())

	r.Get("/", RootHandler)
	r.Handle("/metrics", promhttp.Handler())

	r.Mount("/api/auth", auth.SetupRoutes(authHandler))
	r.Get("/api/check", authHandler.CheckHandler)
	r.Mount("/api/services", services.SetupRoutes(verifier))
	r.Mount("/api/products", products.SetupRoutes(verifier))
	r.Mount("/api/gallery", gallery.SetupRoutes(verifier))
	r.With(middleware.RequireSession(verifier)).Get("/api/stats", stats.StatsHandler)

	if cfg.CloudinaryEnabled() {
		uploader, err := media.New(cfg)
		if err != nil {
			log.Fatal("Failed to init Cloudinary: ", err)
		}
		r.Mount("/api/media", media.SetupRoutes(&media.Handler{Uploader: uploader}, verifier))
	} else {
		log.Println("Cloudinary credentials not set, media endpoints disabled")
	}

	fmt.Println("Server listening on port :" + cfg.Port + "...")

	http.ListenAndServe("0.0.0.0:"+cfg.Port, r)
}
