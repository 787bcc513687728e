package services

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/BlueMoonStudio/BM-Backend/internal/db"
	"github.com/BlueMoonStudio/BM-Backend/internal/utils"
	"github.com/go-chi/chi/v5"
)

// ListServices returns all services, newest first. Public — the storefront
// services section reads this without a session.
func ListServices(w http.ResponseWriter, r *http.Request) {
	var services []Service

	if err := db.DB.Order("id DESC").Find(&services).Error; err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error al obtener servicios")
		return
	}

	utils.JSON(w, http.StatusOK, services)
}

// CreateService creates a new service (admin only).
func CreateService(w http.ResponseWriter, r *http.Request) {
	var service Service
	if err := json.NewDecoder(r.Body).Decode(&service); err != nil {
		utils.Error(w, http.StatusBadRequest, "Formato de solicitud inválido")
		return
	}

	if service.Name == "" || service.Price == 0 {
		utils.Error(w, http.StatusBadRequest, "Nombre y precio son requeridos")
		return
	}

	if err := db.DB.Create(&service).Error; err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error al crear servicio")
		return
	}

	utils.JSON(w, http.StatusCreated, service)
}

// UpdateService applies a partial update to an existing service (admin only).
func UpdateService(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "ID inválido")
		return
	}

	var service Service
	if err := db.DB.First(&service, "id = ?", id).Error; err != nil {
		utils.Error(w, http.StatusNotFound, "Servicio no encontrado")
		return
	}

	var updates struct {
		Name        *string  `json:"name,omitempty"`
		Descripcion *string  `json:"descripcion,omitempty"`
		Price       *float64 `json:"price,omitempty"`
		ImgURL      *string  `json:"img_url,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		utils.Error(w, http.StatusBadRequest, "Formato de solicitud inválido")
		return
	}

	updateMap := make(map[string]interface{})
	if updates.Name != nil {
		updateMap["name"] = *updates.Name
	}
	if updates.Descripcion != nil {
		updateMap["descripcion"] = *updates.Descripcion
	}
	if updates.Price != nil {
		updateMap["price"] = *updates.Price
	}
	if updates.ImgURL != nil {
		updateMap["img_url"] = *updates.ImgURL
	}

	if err := db.DB.Model(&service).Updates(updateMap).Error; err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error al actualizar servicio")
		return
	}

	utils.JSON(w, http.StatusOK, service)
}

// DeleteService removes a service (admin only).
func DeleteService(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "ID inválido")
		return
	}

	if err := db.DB.Delete(&Service{}, "id = ?", id).Error; err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error al eliminar servicio")
		return
	}

	utils.JSON(w, http.StatusOK, map[string]bool{"success": true})
}
