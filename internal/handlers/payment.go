package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"gadget_home_backend/internal/store"

	"github.com/gin-gonic/gin"
)

// PaymentSuccess : callback succès du gateway. Transition idempotente
// vers paid, puis redirection du payeur vers la page succès du front.
// POST /payment/success/:tranID
func (h *Handler) PaymentSuccess(c *gin.Context) {
	tranID := c.Param("tranID")

	_, err := h.Orders.MarkPaid(c.Request.Context(), tranID)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Commande introuvable"})
		return
	}
	if err != nil {
		log.Println("❌ Erreur traitement callback succès:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur traitement paiement"})
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("%s/payment/success/%s", h.Cfg.FrontendURL, tranID))
}

// PaymentFail : callback échec du gateway. La commande passe en statut
// terminal failed mais reste en base (trace d'audit).
// POST /payment/fail/:tranID
func (h *Handler) PaymentFail(c *gin.Context) {
	tranID := c.Param("tranID")

	_, err := h.Orders.MarkFailed(c.Request.Context(), tranID)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Commande introuvable"})
		return
	}
	if err != nil {
		log.Println("❌ Erreur traitement callback échec:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur traitement paiement"})
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("%s/payment/fail/%s", h.Cfg.FrontendURL, tranID))
}
