package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"gadget_home_backend/internal/cache"
	"gadget_home_backend/internal/config"
	"gadget_home_backend/internal/database"
	"gadget_home_backend/internal/handlers"
	"gadget_home_backend/internal/order"
	"gadget_home_backend/internal/payment"
	"gadget_home_backend/internal/routes"
	"gadget_home_backend/internal/services"
	"gadget_home_backend/internal/store"
	"gadget_home_backend/internal/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v83"
)

func main() {
	cfg := config.Load()

	stripe.Key = cfg.StripeSecretKey
	log.Println("✅ Stripe initialisé")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	conns, err := database.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("❌ Échec initialisation bases de données: %v", err)
	}

	// Câblage des dépendances : store injecté, aucun état global
	dataStore := store.NewMongo(conns.Mongo)

	mailer := &utils.Mailer{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
	}

	workflow := order.NewWorkflow(
		dataStore,
		payment.NewStripeGateway(),
		mailer,
		cfg.BackendURL,
		cfg.Currency,
		cfg.DeliveryCharge,
	)

	h := handlers.New(
		dataStore,
		workflow,
		cache.NewProductCache(conns.Redis),
		services.NewSearch(conns.Elastic),
		services.NewUploader(conns.MinIO, cfg.MinioBucket, cfg.MinioEndpoint, cfg.MinioUseSSL),
		cfg,
	)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	routes.RegisterRoutes(r, h, conns.Redis)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Println("🚀 Gadget Home lancé sur le port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("❌ Erreur serveur: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("🛑 Arrêt demandé, fermeture en cours...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Println("⚠️ Erreur arrêt serveur:", err)
	}
	conns.Close(shutdownCtx)
	log.Println("👋 Gadget Home arrêté proprement")
}
