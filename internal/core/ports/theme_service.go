package ports

import (
	"context"

	"github.com/liquidglass/portfolio-api/internal/core/domain"
)

// ThemeStore persists the active theme selection between process runs.
// Load returns an empty id (and no error) when nothing is stored.
type ThemeStore interface {
	Load(ctx context.Context) (domain.ThemeID, error)
	Save(ctx context.Context, id domain.ThemeID) error
}

// ThemeState is a snapshot of the manager.
type ThemeState struct {
	Active        domain.ThemeID `json:"theme"`
	Transitioning bool           `json:"transitioning"`
	Ready         bool           `json:"ready"`
}

// ThemeChange is delivered to subscribers after an effective selection.
type ThemeChange struct {
	Theme     domain.Theme
	Variables map[string]string
}

// ThemeService holds the single active theme and notifies observers of
// changes. Initialize must complete before any themed output is produced.
type ThemeService interface {
	Initialize(ctx context.Context) error
	State() ThemeState
	Active() domain.Theme
	SetTheme(ctx context.Context, id domain.ThemeID) error
	Variables() map[string]string
	Subscribe(fn func(ThemeChange)) (unsubscribe func())
}
