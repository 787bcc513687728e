package services

import (
	"log"

	"github.com/BlueMoonStudio/BM-Backend/internal/db"
)

func Init() {
	if err := db.EnsureSchema(db.DB, "studio"); err != nil {
		log.Fatal("Failed to ensure schema studio: ", err)
	}

	if err := db.DB.AutoMigrate(&Service{}); err != nil {
		log.Fatal("Failed to auto-migrate services table: ", err)
	}
}
