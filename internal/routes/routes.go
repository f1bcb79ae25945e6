package routes

import (
	"net/http"
	"time"

	"gadget_home_backend/internal/handlers"
	"gadget_home_backend/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RegisterRoutes câble tous les endpoints sur le routeur Gin.
func RegisterRoutes(r *gin.Engine, h *handlers.Handler, rdb *redis.Client) {
	secret := []byte(h.Cfg.JWTSecret)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Gadget Home is Running")
	})

	// Émission de token, protégée contre le brute force
	r.POST("/jwt", middleware.RateLimit(rdb, 20, time.Minute), h.IssueToken)

	// Produits (catalogue public, écriture administrative)
	r.GET("/product", h.ListProducts)
	r.POST("/product", h.CreateProduct)
	r.GET("/product/search", h.SearchProducts)
	r.GET("/product/:id", h.GetProduct)
	r.PATCH("/product/:id", h.UpdateProduct)
	r.DELETE("/product/:id", h.DeleteProduct)
	r.POST("/product/:id/image", h.UploadProductImage)

	// Utilisateurs : inscription ouverte, lecture authentifiée
	r.POST("/users", h.CreateUser)
	r.GET("/users", middleware.AuthRequired(secret), h.ListUsers)

	// Panier et commandes (authentifiés)
	auth := r.Group("/", middleware.AuthRequired(secret))
	{
		auth.GET("/carts", h.ListCartItems)
		auth.POST("/carts", h.AddCartItem)
		auth.DELETE("/carts/:id", h.DeleteCartItem)

		auth.POST("/order", h.CreateOrder)
	}

	r.GET("/order", h.ListOrders)
	r.GET("/order/:tran_id", h.GetOrderByTranID)
	r.PUT("/order/:id", h.UpdateOrderStatus)

	// Callbacks du gateway de paiement (pas de bearer token : c'est le
	// prestataire qui poste, l'identification se fait par transaction_id)
	r.POST("/payment/success/:tranID", h.PaymentSuccess)
	r.POST("/payment/fail/:tranID", h.PaymentFail)
}
