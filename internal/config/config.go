package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config regroupe toute la configuration lue depuis l'environnement.
// Plus aucun handler ne lit os.Getenv directement : tout passe par ici.
type Config struct {
	Port        string
	MongoURI    string
	MongoDBName string

	JWTSecret string

	StripeSecretKey string
	Currency        string  // devise par défaut si le client n'en fournit pas
	DeliveryCharge  float64 // surcharge fixe de livraison, ajoutée au total du panier

	BackendURL  string // base des URLs de callback paiement
	FrontendURL string // base des redirections success/fail côté front

	AllowedOrigins []string

	RedisAddr     string
	RedisPassword string

	ElasticURL      string
	ElasticUser     string
	ElasticPassword string

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioUseSSL    bool

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string
}

// Load charge le .env puis construit la configuration.
// Secret JWT ou clé Stripe manquants = fatal au démarrage.
func Load() *Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  Aucun fichier .env trouvé — on continue avec les variables d'environnement du système")
	} else {
		log.Println("✅ Fichier .env chargé avec succès")
	}

	cfg := &Config{
		Port:            getEnv("PORT", "5000"),
		MongoURI:        getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDBName:     getEnv("MONGO_DB", "gadgetDB"),
		JWTSecret:       os.Getenv("ACCESS_TOKEN_SECRET"),
		StripeSecretKey: os.Getenv("STRIPE_SECRET_KEY"),
		Currency:        getEnv("CURRENCY", "eur"),
		BackendURL:      getEnv("BACKEND_URL", "http://localhost:5000"),
		FrontendURL:     getEnv("FRONTEND_URL", "http://localhost:5173"),
		RedisAddr:       os.Getenv("REDIS_HOST"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		ElasticURL:      os.Getenv("ELASTIC_URL"),
		ElasticUser:     os.Getenv("ELASTIC_USER"),
		ElasticPassword: os.Getenv("ELASTIC_PASSWORD"),
		MinioEndpoint:   os.Getenv("MINIO_ENDPOINT"),
		MinioAccessKey:  os.Getenv("MINIO_ACCESS_KEY"),
		MinioSecretKey:  os.Getenv("MINIO_SECRET_KEY"),
		MinioBucket:     getEnv("MINIO_BUCKET", "products"),
		MinioUseSSL:     os.Getenv("MINIO_USE_SSL") == "true",
		SMTPHost:        os.Getenv("SMTP_HOST"),
		SMTPUsername:    os.Getenv("SMTP_USERNAME"),
		SMTPPassword:    os.Getenv("SMTP_PASSWORD"),
		SMTPFrom:        getEnv("SMTP_FROM", "noreply@gadgethome.com"),
	}

	if cfg.JWTSecret == "" {
		log.Fatal("❌ ACCESS_TOKEN_SECRET manquant dans .env")
	}
	if cfg.StripeSecretKey == "" {
		log.Fatal("❌ Impossible d'initialiser Stripe : clé manquante")
	}

	if v := os.Getenv("DELIVERY_CHARGE"); v != "" {
		charge, err := strconv.ParseFloat(v, 64)
		if err != nil {
			log.Fatalf("❌ DELIVERY_CHARGE invalide: %v", err)
		}
		cfg.DeliveryCharge = charge
	}

	cfg.SMTPPort = 587
	if v := os.Getenv("SMTP_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			log.Fatalf("❌ SMTP_PORT invalide: %v", err)
		}
		cfg.SMTPPort = port
	}

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowedOrigins = strings.Split(origins, ",")
	} else {
		cfg.AllowedOrigins = []string{cfg.FrontendURL}
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
