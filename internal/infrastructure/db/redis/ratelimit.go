package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/liquidglass/portfolio-api/internal/core/ports"
)

const ratelimitPrefix = "ratelimit:"

// RateLimiter is a fixed-window counter backed by Redis, so the table is
// bounded by key TTLs instead of growing with the process. INCR plus a
// window-length EXPIRE on the first hit approximates the in-memory limiter;
// denied requests still touch the counter, which is close enough for this
// policy.
type RateLimiter struct {
	client *redis.Client
	max    int
	window time.Duration
	log    zerolog.Logger
}

// NewRateLimiter wraps client with the given per-window budget.
func NewRateLimiter(client *redis.Client, max int, window time.Duration, log zerolog.Logger) *RateLimiter {
	return &RateLimiter{client: client, max: max, window: window, log: log}
}

// Allow reports whether clientID may proceed. Redis errors fail open: a
// broken cache must not take the contact form down with it.
func (r *RateLimiter) Allow(ctx context.Context, clientID string) bool {
	key := ratelimitPrefix + clientID

	n, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		r.log.Warn().Err(err).Str("client_id", clientID).Msg("rate limit check failed, allowing")
		return true
	}
	if n == 1 {
		if err := r.client.Expire(ctx, key, r.window).Err(); err != nil {
			r.log.Warn().Err(err).Str("client_id", clientID).Msg("failed to set rate limit window")
		}
	}
	return n <= int64(r.max)
}

// Entries scans the live windows for the admin surface.
func (r *RateLimiter) Entries(ctx context.Context) ([]ports.RateLimitEntry, error) {
	var out []ports.RateLimitEntry

	iter := r.client.Scan(ctx, 0, ratelimitPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()

		count, err := r.client.Get(ctx, key).Int()
		if err != nil {
			continue // expired between scan and get
		}
		ttl, err := r.client.TTL(ctx, key).Result()
		if err != nil || ttl <= 0 {
			continue
		}

		out = append(out, ports.RateLimitEntry{
			ClientID: key[len(ratelimitPrefix):],
			Count:    count,
			ResetAt:  time.Now().Add(ttl),
		})
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("rate limit scan: %w", err)
	}
	return out, nil
}

// Drop discards a client's window.
func (r *RateLimiter) Drop(ctx context.Context, clientID string) error {
	return r.client.Del(ctx, ratelimitPrefix+clientID).Err()
}
