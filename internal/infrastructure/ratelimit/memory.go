// Package ratelimit provides the in-process fixed-window rate limiter used
// by the contact endpoint when no Redis backend is configured.
package ratelimit

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/liquidglass/portfolio-api/internal/core/ports"
)

const (
	// DefaultMax and DefaultWindow mirror the contact endpoint's policy:
	// 5 requests per client per 15 minutes.
	DefaultMax    = 5
	DefaultWindow = 15 * time.Minute

	sweepInterval = 5 * time.Minute
)

type entry struct {
	count   int
	resetAt time.Time
}

// Memory is a fixed-window counter keyed by client identifier. Windows are
// approximate: a burst straddling a boundary can pass up to twice the nominal
// rate, which is acceptable for this traffic. Expired entries are reclaimed
// by a periodic sweep so the table stays bounded over the process lifetime.
type Memory struct {
	max    int
	window time.Duration
	now    func() time.Time

	mu      sync.Mutex
	entries map[string]*entry
}

// NewMemory builds a limiter; non-positive arguments select the defaults.
func NewMemory(max int, window time.Duration) *Memory {
	if max <= 0 {
		max = DefaultMax
	}
	if window <= 0 {
		window = DefaultWindow
	}
	return &Memory{
		max:     max,
		window:  window,
		now:     time.Now,
		entries: make(map[string]*entry),
	}
}

// Allow reports whether clientID may proceed. The first request of a window
// (or of a client) opens a fresh window with count 1; requests below the
// maximum increment the count; requests at the maximum are denied without
// mutating the entry.
func (m *Memory) Allow(_ context.Context, clientID string) bool {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[clientID]
	if !ok || now.After(e.resetAt) {
		m.entries[clientID] = &entry{count: 1, resetAt: now.Add(m.window)}
		return true
	}
	if e.count < m.max {
		e.count++
		return true
	}
	return false
}

// Entries returns a snapshot of the live windows, sorted by client id.
func (m *Memory) Entries(_ context.Context) ([]ports.RateLimitEntry, error) {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]ports.RateLimitEntry, 0, len(m.entries))
	for id, e := range m.entries {
		if now.After(e.resetAt) {
			continue
		}
		out = append(out, ports.RateLimitEntry{ClientID: id, Count: e.count, ResetAt: e.resetAt})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ClientID < out[j].ClientID })
	return out, nil
}

// Drop discards a client's window, resetting its budget.
func (m *Memory) Drop(_ context.Context, clientID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, clientID)
	return nil
}

// StartSweeper reclaims expired windows until ctx is cancelled.
func (m *Memory) StartSweeper(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(sweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.sweep()
			}
		}
	}()
}

func (m *Memory) sweep() {
	now := m.now()
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, e := range m.entries {
		if now.After(e.resetAt) {
			delete(m.entries, id)
		}
	}
}
