package stats

import (
	"log"
	"net/http"

	"github.com/BlueMoonStudio/BM-Backend/internal/db"
	"github.com/BlueMoonStudio/BM-Backend/internal/gallery"
	"github.com/BlueMoonStudio/BM-Backend/internal/products"
	"github.com/BlueMoonStudio/BM-Backend/internal/services"
	"github.com/BlueMoonStudio/BM-Backend/internal/utils"
)

// StatsHandler returns the record counts shown on the admin dashboard cards.
func StatsHandler(w http.ResponseWriter, r *http.Request) {
	var serviceCount, productCount, photoCount int64

	if err := db.DB.Model(&services.Service{}).Count(&serviceCount).Error; err != nil {
		log.Printf("stats: counting services failed: %v", err)
		utils.Error(w, http.StatusInternalServerError, "Error al obtener estadísticas")
		return
	}
	if err := db.DB.Model(&products.Product{}).Count(&productCount).Error; err != nil {
		log.Printf("stats: counting products failed: %v", err)
		utils.Error(w, http.StatusInternalServerError, "Error al obtener estadísticas")
		return
	}
	if err := db.DB.Model(&gallery.Photo{}).Count(&photoCount).Error; err != nil {
		log.Printf("stats: counting photos failed: %v", err)
		utils.Error(w, http.StatusInternalServerError, "Error al obtener estadísticas")
		return
	}

	utils.JSON(w, http.StatusOK, map[string]int64{
		"services": serviceCount,
		"products": productCount,
		"photos":   photoCount,
	})
}
