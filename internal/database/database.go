package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"gadget_home_backend/internal/config"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Connections regroupe les clients externes avec un cycle de vie explicite :
// ouverts au démarrage, injectés dans les handlers, fermés à l'arrêt.
// MongoDB est obligatoire ; Redis, Elasticsearch et MinIO sont optionnels
// (absents de la config → nil, les services concernés se désactivent).
type Connections struct {
	client *mongo.Client

	Mongo   *mongo.Database
	Redis   *redis.Client
	Elastic *elasticsearch.Client
	MinIO   *minio.Client
}

// Connect ouvre toutes les connexions configurées.
func Connect(ctx context.Context, cfg *config.Config) (*Connections, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	conns := &Connections{}

	// 1. MongoDB
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("connexion MongoDB: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("ping MongoDB: %w", err)
	}
	conns.client = client
	conns.Mongo = client.Database(cfg.MongoDBName)
	log.Println("✅ Connecté à MongoDB :", cfg.MongoDBName)

	// 2. Redis
	conns.Redis = connectRedis(ctx, cfg)

	// 3. Elasticsearch
	conns.Elastic = connectElastic(cfg)

	// 4. MinIO
	conns.MinIO = connectMinIO(ctx, cfg)

	log.Println("✅ Toutes les bases de données sont connectées")
	return conns, nil
}

// Close ferme proprement toutes les connexions ouvertes.
func (c *Connections) Close(ctx context.Context) {
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			log.Println("⚠️ Erreur fermeture Redis:", err)
		}
	}
	if c.client != nil {
		if err := c.client.Disconnect(ctx); err != nil {
			log.Println("⚠️ Erreur fermeture MongoDB:", err)
		} else {
			log.Println("🔌 Connexion MongoDB fermée")
		}
	}
}

func connectRedis(ctx context.Context, cfg *config.Config) *redis.Client {
	if cfg.RedisAddr == "" {
		log.Println("⚠️ Redis non configuré — cache et rate limiting désactivés")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Println("⚠️ Erreur connexion Redis:", err)
		return nil
	}
	log.Println("✅ Connecté à Redis")
	return client
}

func connectElastic(cfg *config.Config) *elasticsearch.Client {
	if cfg.ElasticURL == "" {
		log.Println("⚠️ Elasticsearch non configuré — recherche produit désactivée")
		return nil
	}

	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{cfg.ElasticURL},
		Username:  cfg.ElasticUser,
		Password:  cfg.ElasticPassword,
	})
	if err != nil {
		log.Println("⚠️ Erreur création client Elasticsearch:", err)
		return nil
	}

	res, err := client.Info()
	if err != nil {
		log.Println("⚠️ Erreur connexion Elasticsearch:", err)
		return nil
	}
	defer res.Body.Close()

	log.Println("✅ Connecté à Elasticsearch")
	return client
}

func connectMinIO(ctx context.Context, cfg *config.Config) *minio.Client {
	if cfg.MinioEndpoint == "" {
		log.Println("⚠️ MinIO non configuré — upload d'images désactivé")
		return nil
	}

	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessKey, cfg.MinioSecretKey, ""),
		Secure: cfg.MinioUseSSL,
	})
	if err != nil {
		log.Println("⚠️ Erreur connexion MinIO:", err)
		return nil
	}

	exists, err := client.BucketExists(ctx, cfg.MinioBucket)
	if err != nil {
		log.Println("⚠️ Erreur vérification bucket MinIO:", err)
		return nil
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.MinioBucket, minio.MakeBucketOptions{}); err != nil {
			log.Println("⚠️ Erreur création bucket MinIO:", err)
			return nil
		}
		log.Println("🪣 Bucket créé :", cfg.MinioBucket)
	} else {
		log.Println("🪣 Bucket MinIO déjà présent :", cfg.MinioBucket)
	}

	log.Println("✅ Connecté à MinIO :", cfg.MinioEndpoint)
	return client
}
