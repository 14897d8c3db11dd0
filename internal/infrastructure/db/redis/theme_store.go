package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/liquidglass/portfolio-api/internal/core/domain"
)

// themeKey matches the storage key the web client uses for its selection.
const themeKey = "liquid-glass-theme"

// ThemeStore persists the active theme selection in Redis.
type ThemeStore struct {
	client *redis.Client
}

func NewThemeStore(client *redis.Client) *ThemeStore {
	return &ThemeStore{client: client}
}

// Load returns the stored selection, or empty when none exists.
func (s *ThemeStore) Load(ctx context.Context) (domain.ThemeID, error) {
	v, err := s.client.Get(ctx, themeKey).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("load theme: %w", err)
	}
	return domain.ThemeID(v), nil
}

// Save overwrites the stored selection. No TTL: the choice is durable.
func (s *ThemeStore) Save(ctx context.Context, id domain.ThemeID) error {
	if err := s.client.Set(ctx, themeKey, string(id), 0).Err(); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	return nil
}
