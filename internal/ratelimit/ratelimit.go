// Package ratelimit provides a fixed-window request limiter backed by Redis,
// plus a no-op limiter for deployments without Redis.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Limiter answers whether a given key may perform one more action inside the
// current window. Implementations must be safe for concurrent use.
type Limiter interface {
	// Allow increments the counter for key and reports whether the action is
	// within limit for the window. The first hit in a window sets its TTL.
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
}

// ChatKey builds the rate-limit key for a user's chat messages.
func ChatKey(userID string) string {
	return fmt.Sprintf("rate_limit:chat:%s", userID)
}

// ─── REDIS LIMITER ────────────────────────────────────────────────────────────

type redisLimiter struct {
	client *redis.Client
}

// NewRedisLimiter returns a Limiter using INCR + EXPIRE on the given client.
func NewRedisLimiter(client *redis.Client) Limiter {
	return &redisLimiter{client: client}
}

func (r *redisLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	count, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("ratelimit: incr %s: %w", key, err)
	}

	if count == 1 {
		if err := r.client.Expire(ctx, key, window).Err(); err != nil {
			return false, fmt.Errorf("ratelimit: expire %s: %w", key, err)
		}
	}

	return count <= int64(limit), nil
}

// ─── NO-OP LIMITER ────────────────────────────────────────────────────────────

type noopLimiter struct{}

// NewNoopLimiter returns a Limiter that always allows. Used when REDIS_URL is
// unset (local development).
func NewNoopLimiter() Limiter {
	return noopLimiter{}
}

func (noopLimiter) Allow(context.Context, string, int, time.Duration) (bool, error) {
	return true, nil
}
