package cache

import (
	"context"
	"encoding/json"
	"time"

	"gadget_home_backend/internal/models"

	"github.com/redis/go-redis/v9"
)

const ProductCacheTTL = 10 * time.Minute

// ProductCache : cache read-through des produits dans Redis.
// Client nil → toutes les opérations sont des no-op, la base reste la
// source de vérité.
type ProductCache struct {
	rdb *redis.Client
}

func NewProductCache(rdb *redis.Client) *ProductCache {
	return &ProductCache{rdb: rdb}
}

func (c *ProductCache) Get(ctx context.Context, id string) (*models.Product, bool) {
	if c.rdb == nil {
		return nil, false
	}

	data, err := c.rdb.Get(ctx, "product:"+id).Result()
	if err != nil {
		return nil, false
	}

	var product models.Product
	if err := json.Unmarshal([]byte(data), &product); err != nil {
		return nil, false
	}
	return &product, true
}

func (c *ProductCache) Set(ctx context.Context, id string, product models.Product) {
	if c.rdb == nil {
		return
	}

	data, err := json.Marshal(product)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, "product:"+id, data, ProductCacheTTL)
}

// Invalidate purge l'entrée après update ou delete.
func (c *ProductCache) Invalidate(ctx context.Context, id string) {
	if c.rdb == nil {
		return
	}
	c.rdb.Del(ctx, "product:"+id)
}
