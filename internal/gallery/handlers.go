package gallery

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/BlueMoonStudio/BM-Backend/internal/db"
	"github.com/BlueMoonStudio/BM-Backend/internal/utils"
	"github.com/go-chi/chi/v5"
)

// ListPhotos returns gallery photos, newest shoot first. Public. An optional
// ?limit= caps the result for the storefront preview strip.
func ListPhotos(w http.ResponseWriter, r *http.Request) {
	query := db.DB.Order("fecha DESC").Order("id DESC")

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			utils.Error(w, http.StatusBadRequest, "Límite inválido")
			return
		}
		query = query.Limit(limit)
	}

	var photos []Photo
	if err := query.Find(&photos).Error; err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error al obtener galería")
		return
	}

	utils.JSON(w, http.StatusOK, photos)
}

// CreatePhoto adds a photo to the gallery (admin only). The image itself is
// already on the media host; this only records its URL.
func CreatePhoto(w http.ResponseWriter, r *http.Request) {
	var photo Photo
	if err := json.NewDecoder(r.Body).Decode(&photo); err != nil {
		utils.Error(w, http.StatusBadRequest, "Formato de solicitud inválido")
		return
	}

	if photo.ImgURL == "" {
		utils.Error(w, http.StatusBadRequest, "URL de imagen requerida")
		return
	}

	if err := db.DB.Create(&photo).Error; err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error al crear foto")
		return
	}

	utils.JSON(w, http.StatusCreated, photo)
}

// DeletePhoto removes a photo record (admin only). Deleting the hosted image
// is a separate call to the media endpoints.
func DeletePhoto(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "ID inválido")
		return
	}

	if err := db.DB.Delete(&Photo{}, "id = ?", id).Error; err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error al eliminar foto")
		return
	}

	utils.JSON(w, http.StatusOK, map[string]bool{"success": true})
}
