package products

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/BlueMoonStudio/BM-Backend/internal/db"
	"github.com/BlueMoonStudio/BM-Backend/internal/utils"
	"github.com/go-chi/chi/v5"
)

// ListProducts returns all products, newest first. Public.
func ListProducts(w http.ResponseWriter, r *http.Request) {
	var products []Product

	if err := db.DB.Order("id DESC").Find(&products).Error; err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error al obtener productos")
		return
	}

	utils.JSON(w, http.StatusOK, products)
}

// CreateProduct creates a new product (admin only).
func CreateProduct(w http.ResponseWriter, r *http.Request) {
	var product Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		utils.Error(w, http.StatusBadRequest, "Formato de solicitud inválido")
		return
	}

	if product.Nombre == "" || product.Price == 0 || product.Material == "" {
		utils.Error(w, http.StatusBadRequest, "Nombre, precio y material son requeridos")
		return
	}

	if err := db.DB.Create(&product).Error; err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error al crear producto")
		return
	}

	utils.JSON(w, http.StatusCreated, product)
}

// UpdateProduct applies a partial update to an existing product (admin only).
func UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "ID inválido")
		return
	}

	var product Product
	if err := db.DB.First(&product, "id = ?", id).Error; err != nil {
		utils.Error(w, http.StatusNotFound, "Producto no encontrado")
		return
	}

	var updates struct {
		Nombre      *string  `json:"nombre,omitempty"`
		Price       *float64 `json:"price,omitempty"`
		Descripcion *string  `json:"descripcion,omitempty"`
		Material    *string  `json:"material,omitempty"`
		ImgURL      *string  `json:"img_url,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		utils.Error(w, http.StatusBadRequest, "Formato de solicitud inválido")
		return
	}

	updateMap := make(map[string]interface{})
	if updates.Nombre != nil {
		updateMap["nombre"] = *updates.Nombre
	}
	if updates.Price != nil {
		updateMap["price"] = *updates.Price
	}
	if updates.Descripcion != nil {
		updateMap["descripcion"] = *updates.Descripcion
	}
	if updates.Material != nil {
		updateMap["material"] = *updates.Material
	}
	if updates.ImgURL != nil {
		updateMap["img_url"] = *updates.ImgURL
	}

	if err := db.DB.Model(&product).Updates(updateMap).Error; err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error al actualizar producto")
		return
	}

	utils.JSON(w, http.StatusOK, product)
}

// DeleteProduct removes a product (admin only).
func DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "ID inválido")
		return
	}

	if err := db.DB.Delete(&Product{}, "id = ?", id).Error; err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error al eliminar producto")
		return
	}

	utils.JSON(w, http.StatusOK, map[string]bool{"success": true})
}
