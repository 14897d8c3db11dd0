// Package content provides the built-in, in-process content repository used
// when no MongoDB is configured.
package content

import (
	"context"

	"github.com/liquidglass/portfolio-api/internal/core/domain"
)

// Memory serves the static catalogs compiled into the binary.
type Memory struct {
	projects   []domain.Project
	skills     []domain.Skill
	experience []domain.Experience
}

// NewMemory loads the built-in catalogs.
func NewMemory() *Memory {
	return &Memory{
		projects:   domain.DefaultProjects(),
		skills:     domain.DefaultSkills(),
		experience: domain.DefaultExperience(),
	}
}

func (m *Memory) Projects(_ context.Context) ([]domain.Project, error) {
	out := make([]domain.Project, len(m.projects))
	copy(out, m.projects)
	return out, nil
}

func (m *Memory) ProjectBySlug(_ context.Context, slug string) (*domain.Project, error) {
	for _, p := range m.projects {
		if p.Slug == slug {
			found := p
			return &found, nil
		}
	}
	return nil, domain.ErrProjectNotFound
}

func (m *Memory) Skills(_ context.Context) ([]domain.Skill, error) {
	out := make([]domain.Skill, len(m.skills))
	copy(out, m.skills)
	return out, nil
}

func (m *Memory) Experience(_ context.Context) ([]domain.Experience, error) {
	out := make([]domain.Experience, len(m.experience))
	copy(out, m.experience)
	return out, nil
}
