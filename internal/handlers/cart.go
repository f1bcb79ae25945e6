package handlers

import (
	"errors"
	"log"
	"net/http"

	"gadget_home_backend/internal/models"
	"gadget_home_backend/internal/store"

	"github.com/gin-gonic/gin"
)

// ListCartItems renvoie les articles du panier d'un utilisateur.
// L'email vient du query param, sinon du token.
// GET /carts?email= (auth)
func (h *Handler) ListCartItems(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		email = c.GetString("email")
	}
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email requis"})
		return
	}

	items, err := h.Store.CartItemsByEmail(c.Request.Context(), email)
	if err != nil {
		log.Println("❌ Erreur récupération panier:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur récupération panier"})
		return
	}
	if items == nil {
		items = []models.CartItem{}
	}

	c.JSON(http.StatusOK, items)
}

// AddCartItem ajoute un article au panier (snapshot produit envoyé par le
// front). Le prix n'est pas validé ici — il le sera au checkout.
// POST /carts (auth)
func (h *Handler) AddCartItem(c *gin.Context) {
	var item models.CartItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides", "details": err.Error()})
		return
	}

	if item.Email == "" {
		item.Email = c.GetString("email")
	}
	if item.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email requis"})
		return
	}

	id, err := h.Store.AddCartItem(c.Request.Context(), item)
	if err != nil {
		log.Println("❌ Erreur ajout panier:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur ajout au panier"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"insertedId": id})
}

// DeleteCartItem retire un article du panier par id.
// DELETE /carts/:id (auth)
func (h *Handler) DeleteCartItem(c *gin.Context) {
	id := c.Param("id")

	err := h.Store.DeleteCartItem(c.Request.Context(), id)
	switch {
	case errors.Is(err, store.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Format d'identifiant invalide"})
		return
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Article introuvable"})
		return
	case err != nil:
		log.Println("❌ Erreur suppression article:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur suppression article"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Article supprimé du panier"})
}
