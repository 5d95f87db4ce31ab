package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// OrderCacheTTL is the time-to-live for cached order headers.
	OrderCacheTTL = 24 * time.Hour

	orderCacheKeyPrefix = "order"
)

// CachedOrder is the denormalized order header stored in Redis, keyed by the
// caller-supplied source order id. Order headers are immutable after intake,
// so cached entries never go stale within the TTL. Item-level state (batch
// assignment, status) is deliberately not cached — it mutates.
type CachedOrder struct {
	ID            uuid.UUID `json:"id"`
	SourceOrderID string    `json:"source_order_id"`
	AccountRef    string    `json:"account_ref"`
	CreatedAt     time.Time `json:"created_at"`
}

// OrderCache provides read/write operations for order header cache entries.
// Key format: "order:{sourceOrderId}"
type OrderCache struct {
	client *RedisClient
}

// NewOrderCache creates an OrderCache backed by the given RedisClient.
func NewOrderCache(r *RedisClient) *OrderCache {
	return &OrderCache{client: r}
}

// Get retrieves a cached order header by source order id.
// Returns redis.Nil error when the key does not exist or has expired.
func (c *OrderCache) Get(ctx context.Context, sourceOrderID string) (*CachedOrder, error) {
	data, err := c.client.Client().Get(ctx, c.key(sourceOrderID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, redis.Nil
		}
		return nil, fmt.Errorf("cache get: %w", err)
	}

	var cached CachedOrder
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, fmt.Errorf("cache decode: %w", err)
	}
	return &cached, nil
}

// Set writes a cached order header with a 24-hour TTL.
func (c *OrderCache) Set(ctx context.Context, order *CachedOrder) error {
	data, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	if err := c.client.Client().Set(ctx, c.key(order.SourceOrderID), data, OrderCacheTTL).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Delete removes a cached order header.
func (c *OrderCache) Delete(ctx context.Context, sourceOrderID string) error {
	if err := c.client.Client().Del(ctx, c.key(sourceOrderID)).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

// key builds the Redis key: "order:{sourceOrderId}"
func (c *OrderCache) key(sourceOrderID string) string {
	return fmt.Sprintf("%s:%s", orderCacheKeyPrefix, sourceOrderID)
}
