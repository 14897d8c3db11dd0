package ports

import (
	"context"

	"github.com/liquidglass/portfolio-api/internal/core/domain"
)

// ContentRepository serves the read-only content catalogs. Implementations
// exist for the built-in static data and for MongoDB.
type ContentRepository interface {
	Projects(ctx context.Context) ([]domain.Project, error)
	ProjectBySlug(ctx context.Context, slug string) (*domain.Project, error)
	Skills(ctx context.Context) ([]domain.Skill, error)
	Experience(ctx context.Context) ([]domain.Experience, error)
}

// PortfolioService answers the list/detail queries of the public API.
type PortfolioService interface {
	ListProjects(ctx context.Context, category string, sortBy domain.SortKey) ([]domain.Project, error)
	GetProject(ctx context.Context, slug string) (*domain.Project, error)
	ListSkills(ctx context.Context, category string) ([]domain.Skill, error)
	ListExperience(ctx context.Context) ([]domain.Experience, error)
}
