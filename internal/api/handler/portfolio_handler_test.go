package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/liquidglass/portfolio-api/internal/core/domain"
)

type stubPortfolioService struct {
	projects     []domain.Project
	lastCategory string
	lastSort     domain.SortKey
	projectErr   error
}

func (s *stubPortfolioService) ListProjects(_ context.Context, category string, sortBy domain.SortKey) ([]domain.Project, error) {
	s.lastCategory = category
	s.lastSort = sortBy
	return s.projects, s.projectErr
}

func (s *stubPortfolioService) GetProject(_ context.Context, slug string) (*domain.Project, error) {
	if s.projectErr != nil {
		return nil, s.projectErr
	}
	for i := range s.projects {
		if s.projects[i].Slug == slug {
			return &s.projects[i], nil
		}
	}
	return nil, domain.ErrProjectNotFound
}

func (s *stubPortfolioService) ListSkills(_ context.Context, _ string) ([]domain.Skill, error) {
	return []domain.Skill{{Name: "React", Category: "Frontend", Proficiency: 95}}, nil
}

func (s *stubPortfolioService) ListExperience(_ context.Context) ([]domain.Experience, error) {
	return []domain.Experience{{Company: "Acme", Role: "Engineer"}}, nil
}

func TestPortfolioHandler_ListProjects_PassesQueryParams(t *testing.T) {
	stub := &stubPortfolioService{projects: []domain.Project{{ID: "p1", Slug: "one"}}}
	h := NewPortfolioHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/projects?category=Frontend&sort=name", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.ListProjects(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if stub.lastCategory != "Frontend" || stub.lastSort != domain.SortByName {
		t.Errorf("query passed as category=%q sort=%q", stub.lastCategory, stub.lastSort)
	}

	var resp struct {
		Projects []domain.Project `json:"projects"`
		Count    int              `json:"count"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Count != 1 || len(resp.Projects) != 1 {
		t.Errorf("payload = %+v", resp)
	}
}

func TestPortfolioHandler_GetProject_NotFoundPropagates(t *testing.T) {
	h := NewPortfolioHandler(&stubPortfolioService{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/projects/:slug")
	c.SetParamNames("slug")
	c.SetParamValues("missing")

	// The shared error handler maps ErrProjectNotFound to 404.
	if err := h.GetProject(c); !errors.Is(err, domain.ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound to propagate, got %v", err)
	}
}

func TestPortfolioHandler_ListSkills(t *testing.T) {
	h := NewPortfolioHandler(&stubPortfolioService{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/skills", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.ListSkills(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp struct {
		Skills []domain.Skill `json:"skills"`
		Count  int            `json:"count"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Count != 1 || resp.Skills[0].Name != "React" {
		t.Errorf("payload = %+v", resp)
	}
}

func TestPortfolioHandler_ListExperience(t *testing.T) {
	h := NewPortfolioHandler(&stubPortfolioService{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/experience", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.ListExperience(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp struct {
		Experience []domain.Experience `json:"experience"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Experience) != 1 || resp.Experience[0].Company != "Acme" {
		t.Errorf("payload = %+v", resp)
	}
}
