// Package rediscache provides the Redis-backed implementation of the
// single-key task listing cache.
package rediscache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/taskhive/task-api/internal/store"
)

// listingKey is the one well-known key holding the serialized task listing.
// It is the only key the system ever writes.
const listingKey = "tasks:listing"

// DefaultTTL is the expiry applied to the cached listing. Staleness after a
// missed invalidation is bounded by this window.
const DefaultTTL = 300 * time.Second

// ListingCache implements store.ListingCache on top of a Redis client.
type ListingCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// New creates a ListingCache using the given client and TTL. A non-positive
// TTL falls back to DefaultTTL. If logger is nil, a default logger is used.
func New(client *redis.Client, ttl time.Duration, logger *slog.Logger) *ListingCache {
	if client == nil {
		panic("client cannot be nil")
	}

	if ttl <= 0 {
		ttl = DefaultTTL
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &ListingCache{
		client: client,
		ttl:    ttl,
		logger: logger.With(slog.String("component", "listing_cache")),
	}
}

// Ensure ListingCache implements store.ListingCache interface
var _ store.ListingCache = (*ListingCache)(nil)

// Get returns the cached serialized listing and true on a hit. A missing or
// expired entry is a miss, not an error. Transport failures are returned to
// the caller, which treats them like a miss.
func (c *ListingCache) Get(ctx context.Context) ([]byte, bool, error) {
	data, err := c.client.Get(ctx, listingKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			c.logger.Debug("listing cache miss")
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("cache get error: %w", err)
	}

	c.logger.Debug("listing cache hit", slog.Int("bytes", len(data)))
	return data, true, nil
}

// Set stores the serialized listing with the configured TTL, overwriting
// any previous value.
func (c *ListingCache) Set(ctx context.Context, payload []byte) error {
	if err := c.client.Set(ctx, listingKey, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set error: %w", err)
	}

	c.logger.Debug("listing cached",
		slog.Int("bytes", len(payload)),
		slog.Duration("ttl", c.ttl))
	return nil
}

// Invalidate removes the listing entry. Redis DEL on an absent key is a
// no-op, which makes invalidation idempotent.
func (c *ListingCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, listingKey).Err(); err != nil {
		return fmt.Errorf("cache delete error: %w", err)
	}

	c.logger.Debug("listing cache invalidated")
	return nil
}

// Ping checks if the Redis connection is healthy.
func (c *ListingCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
