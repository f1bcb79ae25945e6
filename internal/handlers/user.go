package handlers

import (
	"errors"
	"log"
	"net/http"

	"gadget_home_backend/internal/models"
	"gadget_home_backend/internal/store"
	"gadget_home_backend/internal/utils"

	"github.com/gin-gonic/gin"
)

// CreateUser enregistre un utilisateur. Idempotent sur l'email : un
// second POST avec le même email renvoie la sentinelle sans insérer.
// POST /users
func (h *Handler) CreateUser(c *gin.Context) {
	var input struct {
		Name     string `json:"name"`
		Email    string `json:"email" binding:"required,email"`
		Phone    string `json:"phone"`
		PhotoURL string `json:"photoURL"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides", "details": err.Error()})
		return
	}

	user := models.User{
		Name:     input.Name,
		Email:    input.Email,
		Phone:    input.Phone,
		PhotoURL: input.PhotoURL,
	}

	if input.Password != "" {
		hash, err := utils.HashPassword(input.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création utilisateur"})
			return
		}
		user.Password = hash
	}

	id, err := h.Store.CreateUser(c.Request.Context(), user)
	if errors.Is(err, store.ErrAlreadyExists) {
		c.JSON(http.StatusOK, gin.H{"message": "Utilisateur déjà enregistré", "insertedId": nil})
		return
	}
	if err != nil {
		log.Println("❌ Erreur création utilisateur:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création utilisateur"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"insertedId": id})
}

// ListUsers renvoie tous les utilisateurs.
// GET /users (auth)
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.Store.ListUsers(c.Request.Context())
	if err != nil {
		log.Println("❌ Erreur récupération utilisateurs:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur récupération utilisateurs"})
		return
	}

	c.JSON(http.StatusOK, users)
}
