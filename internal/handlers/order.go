package handlers

import (
	"errors"
	"log"
	"net/http"

	"gadget_home_backend/internal/models"
	"gadget_home_backend/internal/order"
	"gadget_home_backend/internal/store"

	"github.com/gin-gonic/gin"
)

// CreateOrder initie un checkout pour l'utilisateur authentifié et renvoie
// l'URL de paiement du gateway.
// POST /order (auth)
func (h *Handler) CreateOrder(c *gin.Context) {
	email := c.GetString("email")
	if email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Utilisateur non authentifié"})
		return
	}

	var input order.CheckoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides", "details": err.Error()})
		return
	}

	url, ord, err := h.Orders.CreateOrder(c.Request.Context(), email, input)
	switch {
	case errors.Is(err, order.ErrEmptyCart):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Panier vide"})
		return
	case errors.Is(err, order.ErrCheckoutFailed):
		log.Println("❌ Échec initiation paiement:", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Échec d'initiation du paiement"})
		return
	case err != nil:
		log.Println("❌ Erreur création commande:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création commande"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"url":          url,
		"transectionId": ord.TransactionID,
	})
}

// ListOrders renvoie toutes les commandes, les plus récentes d'abord.
// GET /order
func (h *Handler) ListOrders(c *gin.Context) {
	orders, err := h.Store.ListOrders(c.Request.Context())
	if err != nil {
		log.Println("❌ Erreur récupération commandes:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur récupération commandes"})
		return
	}

	c.JSON(http.StatusOK, orders)
}

// GetOrderByTranID renvoie la commande liée à un transaction_id.
// GET /order/:tran_id
func (h *Handler) GetOrderByTranID(c *gin.Context) {
	tranID := c.Param("tran_id")

	ord, err := h.Store.OrderByTransactionID(c.Request.Context(), tranID)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Commande introuvable"})
		return
	}
	if err != nil {
		log.Println("❌ Erreur récupération commande:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur récupération commande"})
		return
	}

	c.JSON(http.StatusOK, ord)
}

// UpdateOrderStatus change le libellé de statut d'une commande par id.
// PUT /order/:id
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	id := c.Param("id")

	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides", "details": err.Error()})
		return
	}
	if !models.ValidOrderStatus(input.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Statut inconnu", "status": input.Status})
		return
	}

	err := h.Store.UpdateOrderStatus(c.Request.Context(), id, input.Status)
	switch {
	case errors.Is(err, store.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Format d'identifiant invalide"})
		return
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Commande introuvable"})
		return
	case err != nil:
		log.Println("❌ Erreur mise à jour commande:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur mise à jour commande"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Statut mis à jour"})
}
