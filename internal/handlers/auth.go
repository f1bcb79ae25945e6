package handlers

import (
	"log"
	"net/http"

	"gadget_home_backend/internal/utils"

	"github.com/gin-gonic/gin"
)

// IssueToken émet un JWT de session pour l'email fourni, validité 24h.
// POST /jwt
func (h *Handler) IssueToken(c *gin.Context) {
	var input struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides", "details": err.Error()})
		return
	}

	token, err := utils.GenerateJWT(input.Email, []byte(h.Cfg.JWTSecret))
	if err != nil {
		log.Println("❌ Erreur signature JWT:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur génération token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
