package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"food_order/internal/repository"

	"github.com/go-redis/redis/v8"
)

const productsKey = "catalog:products"

// Client caches the public product listing in Redis. Admin catalog writes
// invalidate it; otherwise entries age out on the configured TTL.
type Client struct {
	rdb *redis.Client
	ttl time.Duration
}

func Initialize(redisURL string, ttl time.Duration) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb, ttl: ttl}, nil
}

// GetProducts returns the cached listing, or (nil, nil) on a cache miss.
func (c *Client) GetProducts() ([]repository.ProductWithCategory, error) {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, productsKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cached products: %w", err)
	}

	var products []repository.ProductWithCategory
	if err := json.Unmarshal([]byte(val), &products); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached products: %w", err)
	}
	return products, nil
}

func (c *Client) SetProducts(products []repository.ProductWithCategory) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("failed to marshal products: %w", err)
	}
	return c.rdb.Set(ctx, productsKey, jsonData, c.ttl).Err()
}

func (c *Client) Invalidate() error {
	ctx := context.Background()
	return c.rdb.Del(ctx, productsKey).Err()
}

// Close Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}
