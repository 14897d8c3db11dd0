package domain

import (
	"errors"
	"strconv"
)

// ThemeID identifies one entry of the fixed theme catalog.
type ThemeID string

const (
	ThemeOceanBlue    ThemeID = "ocean-blue"
	ThemeNeonPurple   ThemeID = "neon-purple"
	ThemeSunsetOrange ThemeID = "sunset-orange"
	ThemeClassicGlass ThemeID = "classic-glass"
)

// DefaultTheme is adopted when no valid persisted selection exists.
const DefaultTheme = ThemeOceanBlue

var ErrUnknownTheme = errors.New("unknown theme")

// ThemeColors is the immutable color/parameter bundle of a theme.
type ThemeColors struct {
	Primary     string `json:"primary" bson:"primary"`
	PrimaryGlow string `json:"primary_glow" bson:"primary_glow"`
	Accent      string `json:"accent" bson:"accent"`
	AccentGlow  string `json:"accent_glow" bson:"accent_glow"`

	Gradient1 string `json:"gradient1" bson:"gradient1"`
	Gradient2 string `json:"gradient2" bson:"gradient2"`
	Gradient3 string `json:"gradient3" bson:"gradient3"`
	Gradient4 string `json:"gradient4" bson:"gradient4"`

	Background string `json:"background" bson:"background"`
	Surface    string `json:"surface" bson:"surface"`
	SurfaceAlt string `json:"surface_alt" bson:"surface_alt"`

	GlassBlur     string  `json:"glass_blur" bson:"glass_blur"`
	GlassOpacity  float64 `json:"glass_opacity" bson:"glass_opacity"`
	BorderOpacity float64 `json:"border_opacity" bson:"border_opacity"`
	GlowIntensity float64 `json:"glow_intensity" bson:"glow_intensity"`
}

// Theme is one named visual style from the catalog.
type Theme struct {
	ID          ThemeID     `json:"id" bson:"_id"`
	Name        string      `json:"name" bson:"name"`
	Description string      `json:"description" bson:"description"`
	Colors      ThemeColors `json:"colors" bson:"colors"`
}

// themeCatalog is the closed set of available themes. Entries are defined at
// process start and never mutated; callers always receive copies.
var themeCatalog = []Theme{
	{
		ID:          ThemeOceanBlue,
		Name:        "Ocean Blue",
		Description: "Deep cosmic blue with cyan accents",
		Colors: ThemeColors{
			Primary:       "oklch(0.7 0.19 230)",
			PrimaryGlow:   "oklch(0.7 0.19 230 / 0.3)",
			Accent:        "oklch(0.68 0.24 310)",
			AccentGlow:    "oklch(0.68 0.24 310 / 0.3)",
			Gradient1:     "oklch(0.7 0.19 230)",
			Gradient2:     "oklch(0.68 0.24 310)",
			Gradient3:     "oklch(0.75 0.18 280)",
			Gradient4:     "oklch(0.65 0.2 190)",
			Background:    "oklch(0.15 0.02 250)",
			Surface:       "oklch(0.22 0.035 260 / 0.6)",
			SurfaceAlt:    "oklch(0.28 0.04 260 / 0.5)",
			GlassBlur:     "20px",
			GlassOpacity:  0.6,
			BorderOpacity: 0.3,
			GlowIntensity: 0.5,
		},
	},
	{
		ID:          ThemeNeonPurple,
		Name:        "Neon Purple",
		Description: "Vibrant purple and pink gradients",
		Colors: ThemeColors{
			Primary:       "oklch(0.65 0.28 310)",
			PrimaryGlow:   "oklch(0.65 0.28 310 / 0.4)",
			Accent:        "oklch(0.7 0.3 350)",
			AccentGlow:    "oklch(0.7 0.3 350 / 0.4)",
			Gradient1:     "oklch(0.65 0.28 310)",
			Gradient2:     "oklch(0.7 0.3 350)",
			Gradient3:     "oklch(0.6 0.25 330)",
			Gradient4:     "oklch(0.68 0.22 290)",
			Background:    "oklch(0.12 0.04 310)",
			Surface:       "oklch(0.20 0.06 310 / 0.65)",
			SurfaceAlt:    "oklch(0.25 0.07 310 / 0.55)",
			GlassBlur:     "24px",
			GlassOpacity:  0.65,
			BorderOpacity: 0.35,
			GlowIntensity: 0.7,
		},
	},
	{
		ID:          ThemeSunsetOrange,
		Name:        "Sunset Orange",
		Description: "Warm orange and gold tones",
		Colors: ThemeColors{
			Primary:       "oklch(0.72 0.22 50)",
			PrimaryGlow:   "oklch(0.72 0.22 50 / 0.4)",
			Accent:        "oklch(0.78 0.18 80)",
			AccentGlow:    "oklch(0.78 0.18 80 / 0.4)",
			Gradient1:     "oklch(0.72 0.22 50)",
			Gradient2:     "oklch(0.78 0.18 80)",
			Gradient3:     "oklch(0.68 0.25 30)",
			Gradient4:     "oklch(0.75 0.2 65)",
			Background:    "oklch(0.15 0.03 40)",
			Surface:       "oklch(0.22 0.05 45 / 0.6)",
			SurfaceAlt:    "oklch(0.28 0.06 50 / 0.5)",
			GlassBlur:     "22px",
			GlassOpacity:  0.6,
			BorderOpacity: 0.3,
			GlowIntensity: 0.6,
		},
	},
	{
		ID:          ThemeClassicGlass,
		Name:        "Classic Glass",
		Description: "Elegant transparent glass with subtle reflections",
		Colors: ThemeColors{
			Primary:       "oklch(0.85 0.02 250)",
			PrimaryGlow:   "oklch(0.85 0.02 250 / 0.2)",
			Accent:        "oklch(0.75 0.03 240)",
			AccentGlow:    "oklch(0.75 0.03 240 / 0.2)",
			Gradient1:     "oklch(0.85 0.02 250)",
			Gradient2:     "oklch(0.75 0.03 240)",
			Gradient3:     "oklch(0.65 0.02 230)",
			Gradient4:     "oklch(0.80 0.02 260)",
			Background:    "oklch(0.10 0.01 240)",
			Surface:       "oklch(0.20 0.02 240 / 0.4)",
			SurfaceAlt:    "oklch(0.25 0.02 240 / 0.35)",
			GlassBlur:     "28px",
			GlassOpacity:  0.4,
			BorderOpacity: 0.2,
			GlowIntensity: 0.3,
		},
	},
}

// ThemeCatalog returns the full catalog in its fixed order.
func ThemeCatalog() []Theme {
	out := make([]Theme, len(themeCatalog))
	copy(out, themeCatalog)
	return out
}

// ThemeByID looks up a catalog entry.
func ThemeByID(id ThemeID) (Theme, bool) {
	for _, t := range themeCatalog {
		if t.ID == id {
			return t, true
		}
	}
	return Theme{}, false
}

// ValidThemeID reports whether id names a catalog entry.
func ValidThemeID(id ThemeID) bool {
	_, ok := ThemeByID(id)
	return ok
}

// Variables flattens the color/parameter bundle into the style bindings the
// presentation layer consumes. Every key of the bundle is present, including
// the derived card/secondary/muted aliases.
func (t Theme) Variables() map[string]string {
	c := t.Colors
	return map[string]string{
		"--color-primary":      c.Primary,
		"--color-primary-glow": c.PrimaryGlow,
		"--color-accent":       c.Accent,
		"--color-accent-glow":  c.AccentGlow,
		"--color-gradient-1":   c.Gradient1,
		"--color-gradient-2":   c.Gradient2,
		"--color-gradient-3":   c.Gradient3,
		"--color-gradient-4":   c.Gradient4,
		"--color-background":   c.Background,
		"--color-surface":      c.Surface,
		"--color-surface-alt":  c.SurfaceAlt,
		"--color-card":         c.Surface,
		"--color-secondary":    c.SurfaceAlt,
		"--color-muted":        c.SurfaceAlt,
		"--glass-blur":         c.GlassBlur,
		"--glass-opacity":      formatFloat(c.GlassOpacity),
		"--border-opacity":     formatFloat(c.BorderOpacity),
		"--glow-intensity":     formatFloat(c.GlowIntensity),
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
