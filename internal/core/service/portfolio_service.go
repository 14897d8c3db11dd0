package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/liquidglass/portfolio-api/internal/core/domain"
	"github.com/liquidglass/portfolio-api/internal/core/ports"
)

type portfolioService struct {
	repo ports.ContentRepository
	log  zerolog.Logger
}

// NewPortfolioService answers content queries from the given repository.
func NewPortfolioService(repo ports.ContentRepository, log zerolog.Logger) ports.PortfolioService {
	return &portfolioService{repo: repo, log: log}
}

// ListProjects filters by category and sorts. An empty category means all;
// an empty sort key defaults to recency.
func (s *portfolioService) ListProjects(ctx context.Context, category string, sortBy domain.SortKey) ([]domain.Project, error) {
	projects, err := s.repo.Projects(ctx)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	if category == "" {
		category = domain.CategoryAll
	}
	if sortBy == "" {
		sortBy = domain.SortByDate
	}

	return domain.SortProjects(domain.FilterProjectsByCategory(projects, category), sortBy), nil
}

func (s *portfolioService) GetProject(ctx context.Context, slug string) (*domain.Project, error) {
	p, err := s.repo.ProjectBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}
	return p, nil
}

func (s *portfolioService) ListSkills(ctx context.Context, category string) ([]domain.Skill, error) {
	skills, err := s.repo.Skills(ctx)
	if err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}
	if category == "" {
		category = domain.CategoryAll
	}
	return domain.SortSkillsByProficiency(domain.FilterSkillsByCategory(skills, category)), nil
}

func (s *portfolioService) ListExperience(ctx context.Context) ([]domain.Experience, error) {
	exp, err := s.repo.Experience(ctx)
	if err != nil {
		return nil, fmt.Errorf("list experience: %w", err)
	}
	return exp, nil
}
