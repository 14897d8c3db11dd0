package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/liquidglass/portfolio-api/internal/core/domain"
	"github.com/liquidglass/portfolio-api/internal/core/ports"
)

// defaultTransitionDelay is how long the transitioning flag stays raised
// after an effective theme change.
const defaultTransitionDelay = 600 * time.Millisecond

var ErrThemeNotReady = errors.New("theme manager not initialized")

// ThemeManager holds the single active theme. Startup is two-phase: until
// Initialize has read the persisted selection the manager is not ready and
// produces no variables, so nothing themed renders with the wrong theme.
type ThemeManager struct {
	store ports.ThemeStore
	log   zerolog.Logger
	delay time.Duration

	mu            sync.Mutex
	ready         bool
	active        domain.Theme
	transitioning bool
	timer         *time.Timer
	vars          map[string]string
	subs          map[int]func(ports.ThemeChange)
	nextSub       int
}

// NewThemeManager creates an uninitialized manager. A delay <= 0 selects the
// default transition decay.
func NewThemeManager(store ports.ThemeStore, delay time.Duration, log zerolog.Logger) *ThemeManager {
	if delay <= 0 {
		delay = defaultTransitionDelay
	}
	return &ThemeManager{
		store: store,
		log:   log,
		delay: delay,
		subs:  make(map[int]func(ports.ThemeChange)),
	}
}

// Initialize reads the persisted selection and adopts it when it names a
// catalog entry, otherwise the default. An unreadable store falls back to the
// default as well; persistence is best effort. Idempotent.
func (m *ThemeManager) Initialize(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ready {
		return nil
	}

	id := domain.DefaultTheme
	stored, err := m.store.Load(ctx)
	switch {
	case err != nil:
		m.log.Warn().Err(err).Msg("theme store unreadable, using default theme")
	case stored != "" && domain.ValidThemeID(stored):
		id = stored
	}

	theme, _ := domain.ThemeByID(id)
	m.active = theme
	m.vars = theme.Variables()
	m.ready = true

	m.log.Debug().Str("theme", string(id)).Msg("theme manager initialized")
	return nil
}

// State returns a snapshot of the manager.
func (m *ThemeManager) State() ports.ThemeState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return ports.ThemeState{
		Active:        m.active.ID,
		Transitioning: m.transitioning,
		Ready:         m.ready,
	}
}

// Active returns the active catalog entry.
func (m *ThemeManager) Active() domain.Theme {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.active
}

// Variables returns a copy of the applied style bindings. Empty until the
// manager is ready.
func (m *ThemeManager) Variables() map[string]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]string, len(m.vars))
	for k, v := range m.vars {
		out[k] = v
	}
	return out
}

// SetTheme adopts a new active theme. Selecting the already-active id is a
// no-op that leaves the transitioning flag untouched. Otherwise every key of
// the new theme's bundle is applied, the selection is persisted, subscribers
// are notified, and the transitioning flag decays after the configured delay.
// Rapid repeated calls restart the decay; last write wins.
func (m *ThemeManager) SetTheme(ctx context.Context, id domain.ThemeID) error {
	theme, ok := domain.ThemeByID(id)
	if !ok {
		return domain.ErrUnknownTheme
	}

	m.mu.Lock()
	if !m.ready {
		m.mu.Unlock()
		return ErrThemeNotReady
	}
	if id == m.active.ID {
		m.mu.Unlock()
		return nil
	}

	m.active = theme
	m.vars = theme.Variables()
	m.transitioning = true

	if m.timer != nil {
		m.timer.Stop()
	}
	m.timer = time.AfterFunc(m.delay, func() {
		m.mu.Lock()
		m.transitioning = false
		m.timer = nil
		m.mu.Unlock()
	})

	if err := m.store.Save(ctx, id); err != nil {
		m.log.Warn().Err(err).Str("theme", string(id)).Msg("failed to persist theme selection")
	}

	change := ports.ThemeChange{Theme: theme, Variables: theme.Variables()}
	subs := make([]func(ports.ThemeChange), 0, len(m.subs))
	for _, fn := range m.subs {
		subs = append(subs, fn)
	}
	m.mu.Unlock()

	for _, fn := range subs {
		fn(change)
	}

	m.log.Info().Str("theme", string(id)).Msg("theme changed")
	return nil
}

// Subscribe registers an observer for effective theme changes and returns
// its unsubscribe function.
func (m *ThemeManager) Subscribe(fn func(ports.ThemeChange)) func() {
	m.mu.Lock()
	id := m.nextSub
	m.nextSub++
	m.subs[id] = fn
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.subs, id)
		m.mu.Unlock()
	}
}
