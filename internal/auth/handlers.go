package auth

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/BlueMoonStudio/BM-Backend/internal/db"
	"github.com/BlueMoonStudio/BM-Backend/internal/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Handler owns the login/logout/check endpoints. The codec and cookie
// adapter are injected so tests can swap secrets and cookie modes.
type Handler struct {
	Codec  *Codec
	Cookie *CookieAdapter
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Usuario y contraseña requeridos")
		return
	}
	if req.Username == "" || req.Password == "" {
		utils.Error(w, http.StatusBadRequest, "Usuario y contraseña requeridos")
		return
	}

	var admin Admin
	if err := db.DB.First(&admin, "username = ?", req.Username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(w, http.StatusUnauthorized, "Usuario no encontrado")
			return
		}
		log.Printf("login: admin lookup failed: %v", err)
		utils.Error(w, http.StatusInternalServerError, "Error interno del servidor")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.HashedPassword), []byte(req.Password)); err != nil {
		utils.Error(w, http.StatusUnauthorized, "Contraseña incorrecta")
		return
	}

	token, err := h.Codec.Issue(admin.ID, admin.Username)
	if err != nil {
		log.Printf("login: token issue failed: %v", err)
		utils.Error(w, http.StatusInternalServerError, "Error interno del servidor")
		return
	}
	h.Cookie.Persist(w, token)

	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"user": map[string]interface{}{
			"id":       admin.ID,
			"username": admin.Username,
		},
	})
}

func (h *Handler) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	h.Cookie.Clear(w)
	utils.JSON(w, http.StatusOK, map[string]bool{"success": true})
}

// CheckHandler is the whoami endpoint the admin pages probe on mount. Any
// failure to produce valid claims reads as unauthenticated.
func (h *Handler) CheckHandler(w http.ResponseWriter, r *http.Request) {
	token, ok := h.Cookie.Read(r)
	if !ok {
		utils.JSON(w, http.StatusUnauthorized, map[string]bool{"authenticated": false})
		return
	}

	claims, err := h.Codec.Verify(token)
	if err != nil {
		utils.JSON(w, http.StatusUnauthorized, map[string]bool{"authenticated": false})
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"authenticated": true,
		"user": map[string]interface{}{
			"id":       claims.UserID,
			"username": claims.Username,
			"exp":      claims.ExpiresAt.Unix(),
		},
	})
}
