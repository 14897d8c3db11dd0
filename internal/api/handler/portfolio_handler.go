package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/liquidglass/portfolio-api/internal/core/domain"
	"github.com/liquidglass/portfolio-api/internal/core/ports"
)

// PortfolioHandler serves the read-only content catalogs.
type PortfolioHandler struct {
	service ports.PortfolioService
}

func NewPortfolioHandler(service ports.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{service: service}
}

type projectListResponse struct {
	Projects []domain.Project `json:"projects"`
	Count    int              `json:"count"`
}

type skillListResponse struct {
	Skills []domain.Skill `json:"skills"`
	Count  int            `json:"count"`
}

type experienceListResponse struct {
	Experience []domain.Experience `json:"experience"`
}

// ListProjects handles GET /api/projects.
//
// @Summary      List projects
// @Tags         portfolio
// @Produce      json
// @Param        category  query     string  false  "Category filter; 'All' or empty returns everything"
// @Param        sort      query     string  false  "Sort key: date, name, or category"
// @Success      200       {object}  projectListResponse
// @Router       /api/projects [get]
func (h *PortfolioHandler) ListProjects(c echo.Context) error {
	projects, err := h.service.ListProjects(
		c.Request().Context(),
		c.QueryParam("category"),
		domain.SortKey(c.QueryParam("sort")),
	)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, projectListResponse{Projects: projects, Count: len(projects)})
}

// GetProject handles GET /api/projects/:slug.
//
// @Summary      Get one project
// @Tags         portfolio
// @Produce      json
// @Param        slug  path      string  true  "Project slug"
// @Success      200   {object}  domain.Project
// @Failure      404   {object}  map[string]string
// @Router       /api/projects/{slug} [get]
func (h *PortfolioHandler) GetProject(c echo.Context) error {
	p, err := h.service.GetProject(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

// ListSkills handles GET /api/skills.
//
// @Summary      List skills
// @Tags         portfolio
// @Produce      json
// @Param        category  query     string  false  "Category filter"
// @Success      200       {object}  skillListResponse
// @Router       /api/skills [get]
func (h *PortfolioHandler) ListSkills(c echo.Context) error {
	skills, err := h.service.ListSkills(c.Request().Context(), c.QueryParam("category"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, skillListResponse{Skills: skills, Count: len(skills)})
}

// ListExperience handles GET /api/experience.
//
// @Summary      List work history
// @Tags         portfolio
// @Produce      json
// @Success      200  {object}  experienceListResponse
// @Router       /api/experience [get]
func (h *PortfolioHandler) ListExperience(c echo.Context) error {
	exp, err := h.service.ListExperience(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, experienceListResponse{Experience: exp})
}
