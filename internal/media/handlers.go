package media

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/BlueMoonStudio/BM-Backend/internal/utils"
)

// maxUploadBytes matches the 10MB limit the admin upload widget enforces.
const maxUploadBytes = 10 << 20

var allowedImageTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/webp": {},
}

type Handler struct {
	Uploader *Uploader
}

// UploadHandler accepts a multipart image and pushes it to the media host.
func (h *Handler) UploadHandler(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		utils.Error(w, http.StatusBadRequest, "El archivo es demasiado grande. Máximo 10MB permitido")
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Archivo requerido")
		return
	}
	defer file.Close()

	// Sniff the real content type instead of trusting the part header.
	head := make([]byte, 512)
	n, _ := file.Read(head)
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		log.Printf("media: rewind upload failed: %v", err)
		utils.Error(w, http.StatusInternalServerError, "Error interno del servidor")
		return
	}
	if _, ok := allowedImageTypes[http.DetectContentType(head[:n])]; !ok {
		utils.Error(w, http.StatusBadRequest, "Tipo de archivo no permitido. Solo se permiten: JPG, PNG, WEBP")
		return
	}

	result, err := h.Uploader.Upload(r.Context(), file, r.FormValue("folder"))
	if err != nil {
		log.Printf("media: upload failed: %v", err)
		utils.Error(w, http.StatusInternalServerError, "Error subiendo imagen")
		return
	}

	utils.JSON(w, http.StatusCreated, result)
}

// DeleteHandler removes a hosted image by its public ID.
func (h *Handler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PublicID string `json:"publicId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.PublicID == "" {
		utils.Error(w, http.StatusBadRequest, "Public ID requerido")
		return
	}

	if err := h.Uploader.Destroy(r.Context(), req.PublicID); err != nil {
		log.Printf("media: destroy failed: %v", err)
		utils.Error(w, http.StatusInternalServerError, "Error eliminando imagen")
		return
	}

	utils.JSON(w, http.StatusOK, map[string]bool{"success": true})
}
