package ports

import (
	"context"
	"time"
)

// RateLimiter buckets requests by client identifier over fixed windows.
// Denial is a normal return value, never an error; backends that fail
// (e.g. an unreachable cache) fail open.
type RateLimiter interface {
	Allow(ctx context.Context, clientID string) bool
}

// RateLimitEntry is one client's counter as seen by the admin surface.
type RateLimitEntry struct {
	ClientID string    `json:"client_id"`
	Count    int       `json:"count"`
	ResetAt  time.Time `json:"reset_at"`
}

// LimiterInspector exposes the limiter table for operators.
type LimiterInspector interface {
	Entries(ctx context.Context) ([]RateLimitEntry, error)
	Drop(ctx context.Context, clientID string) error
}
