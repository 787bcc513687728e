package main

import (
	"flag"
	"log"

	"github.com/joho/godotenv"

	"github.com/BlueMoonStudio/BM-Backend/internal/auth"
	"github.com/BlueMoonStudio/BM-Backend/internal/config"
	"github.com/BlueMoonStudio/BM-Backend/internal/db"
	"github.com/BlueMoonStudio/BM-Backend/internal/gallery"
	"github.com/BlueMoonStudio/BM-Backend/internal/products"
	"github.com/BlueMoonStudio/BM-Backend/internal/seeds"
	"github.com/BlueMoonStudio/BM-Backend/internal/services"
)

var fixturePath = flag.String("fixture", "seeds/studio.yaml", "Path to the YAML seed fixture")

func main() {
	_ = godotenv.Load(".env.local")
	flag.Parse()

	cfg := config.Load()
	db.Connect(cfg.DatabaseURL)

	auth.Init()
	services.Init()
	products.Init()
	gallery.Init()

	if err := seeds.SeedAll(*fixturePath); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}
