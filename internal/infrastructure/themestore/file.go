// Package themestore persists the active theme selection on local disk, the
// durable-storage fallback when no Redis is configured.
package themestore

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/liquidglass/portfolio-api/internal/core/domain"
)

// File stores the selected theme identifier as a single line in a state file.
type File struct {
	path string
}

func NewFile(path string) *File {
	return &File{path: path}
}

// Load returns the stored selection, or empty when the file does not exist.
func (f *File) Load(_ context.Context) (domain.ThemeID, error) {
	b, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("load theme: %w", err)
	}
	return domain.ThemeID(strings.TrimSpace(string(b))), nil
}

// Save overwrites the state file with the new selection.
func (f *File) Save(_ context.Context, id domain.ThemeID) error {
	if err := os.WriteFile(f.path, []byte(string(id)+"\n"), 0o644); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	return nil
}
