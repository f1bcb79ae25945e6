package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"gadget_home_backend/internal/models"
	"gadget_home_backend/internal/store"

	"github.com/gin-gonic/gin"
)

// ListProducts renvoie le catalogue complet.
// GET /product
func (h *Handler) ListProducts(c *gin.Context) {
	products, err := h.Store.ListProducts(c.Request.Context())
	if err != nil {
		log.Println("❌ Erreur récupération produits:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur récupération produits"})
		return
	}

	c.JSON(http.StatusOK, products)
}

// CreateProduct ajoute un produit au catalogue et l'indexe pour la recherche.
// POST /product
func (h *Handler) CreateProduct(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides", "details": err.Error()})
		return
	}

	id, err := h.Store.CreateProduct(c.Request.Context(), product)
	if err != nil {
		log.Println("❌ Erreur création produit:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création produit"})
		return
	}

	if h.Search != nil {
		// indexation hors du cycle de la requête
		go h.Search.IndexProduct(context.Background(), id, product)
	}

	c.JSON(http.StatusCreated, gin.H{"insertedId": id})
}

// GetProduct renvoie un produit par id. Id mal formé → 400, absent → 404.
// GET /product/:id
func (h *Handler) GetProduct(c *gin.Context) {
	id := c.Param("id")
	ctx := c.Request.Context()

	if h.Cache != nil {
		if product, ok := h.Cache.Get(ctx, id); ok {
			c.JSON(http.StatusOK, product)
			return
		}
	}

	product, err := h.Store.ProductByID(ctx, id)
	switch {
	case errors.Is(err, store.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Format d'identifiant invalide"})
		return
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	case err != nil:
		log.Println("❌ Erreur récupération produit:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur récupération produit"})
		return
	}

	if h.Cache != nil {
		h.Cache.Set(ctx, id, product)
	}

	c.JSON(http.StatusOK, product)
}

// UpdateProduct fusionne les champs fournis dans le produit existant.
// PATCH /product/:id
func (h *Handler) UpdateProduct(c *gin.Context) {
	id := c.Param("id")

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides", "details": err.Error()})
		return
	}

	ctx := c.Request.Context()
	err := h.Store.UpdateProduct(ctx, id, updates)
	switch {
	case errors.Is(err, store.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Format d'identifiant invalide"})
		return
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	case err != nil:
		log.Println("❌ Erreur mise à jour produit:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur mise à jour produit"})
		return
	}

	if h.Cache != nil {
		h.Cache.Invalidate(ctx, id)
	}
	if h.Search != nil {
		if product, err := h.Store.ProductByID(ctx, id); err == nil {
			go h.Search.IndexProduct(context.Background(), id, product)
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Produit mis à jour"})
}

// DeleteProduct supprime un produit du catalogue, du cache et de l'index.
// DELETE /product/:id
func (h *Handler) DeleteProduct(c *gin.Context) {
	id := c.Param("id")
	ctx := c.Request.Context()

	err := h.Store.DeleteProduct(ctx, id)
	switch {
	case errors.Is(err, store.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Format d'identifiant invalide"})
		return
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	case err != nil:
		log.Println("❌ Erreur suppression produit:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur suppression produit"})
		return
	}

	if h.Cache != nil {
		h.Cache.Invalidate(ctx, id)
	}
	if h.Search != nil {
		h.Search.DeleteProduct(ctx, id)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Produit supprimé avec succès"})
}

// SearchProducts interroge l'index Elasticsearch.
// GET /product/search?q=
func (h *Handler) SearchProducts(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Paramètre q requis"})
		return
	}

	if h.Search == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Recherche non disponible"})
		return
	}

	results, err := h.Search.SearchProducts(c.Request.Context(), query)
	if err != nil {
		log.Println("❌ Erreur recherche produits:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur recherche produits"})
		return
	}

	c.JSON(http.StatusOK, results)
}

// UploadProductImage reçoit une image multipart, la pousse dans MinIO et
// enregistre son URL sur le produit.
// POST /product/:id/image
func (h *Handler) UploadProductImage(c *gin.Context) {
	id := c.Param("id")
	ctx := c.Request.Context()

	// le produit doit exister avant d'accepter le fichier
	if _, err := h.Store.ProductByID(ctx, id); err != nil {
		switch {
		case errors.Is(err, store.ErrInvalidID):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Format d'identifiant invalide"})
		case errors.Is(err, store.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur récupération produit"})
		}
		return
	}

	if h.Uploader == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Upload d'images non disponible"})
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Fichier image manquant"})
		return
	}

	url, err := h.Uploader.UploadProductImage(ctx, id, file)
	if err != nil {
		log.Println("❌ Erreur upload MinIO:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur upload image"})
		return
	}

	if err := h.Store.UpdateProduct(ctx, id, map[string]interface{}{"image": url}); err != nil {
		log.Println("❌ Erreur enregistrement URL image:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur enregistrement image"})
		return
	}
	if h.Cache != nil {
		h.Cache.Invalidate(ctx, id)
	}

	c.JSON(http.StatusOK, gin.H{"image": url})
}
