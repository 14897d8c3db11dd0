package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/liquidglass/portfolio-api/internal/api/metrics"
	"github.com/liquidglass/portfolio-api/internal/core/domain"
	"github.com/liquidglass/portfolio-api/internal/core/ports"
)

// ThemeHandler exposes the theme catalog and the active selection.
type ThemeHandler struct {
	manager ports.ThemeService
}

func NewThemeHandler(manager ports.ThemeService) *ThemeHandler {
	return &ThemeHandler{manager: manager}
}

type themeCatalogResponse struct {
	Themes  []domain.Theme `json:"themes"`
	Default domain.ThemeID `json:"default"`
}

type setThemeRequest struct {
	Theme string `json:"theme" validate:"required"`
}

type activeThemeResponse struct {
	Theme         domain.ThemeID    `json:"theme"`
	Transitioning bool              `json:"transitioning"`
	Variables     map[string]string `json:"variables"`
}

// Catalog handles GET /api/themes.
//
// @Summary      List the theme catalog
// @Tags         themes
// @Produce      json
// @Success      200  {object}  themeCatalogResponse
// @Router       /api/themes [get]
func (h *ThemeHandler) Catalog(c echo.Context) error {
	return c.JSON(http.StatusOK, themeCatalogResponse{
		Themes:  domain.ThemeCatalog(),
		Default: domain.DefaultTheme,
	})
}

// Get handles GET /api/themes/:id.
//
// @Summary      Get one catalog entry
// @Tags         themes
// @Produce      json
// @Param        id   path      string  true  "Theme identifier"
// @Success      200  {object}  domain.Theme
// @Failure      404  {object}  map[string]string
// @Router       /api/themes/{id} [get]
func (h *ThemeHandler) Get(c echo.Context) error {
	theme, ok := domain.ThemeByID(domain.ThemeID(c.Param("id")))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "theme not found")
	}
	return c.JSON(http.StatusOK, theme)
}

// Active handles GET /api/theme.
//
// @Summary      Get the active theme selection
// @Tags         themes
// @Produce      json
// @Success      200  {object}  activeThemeResponse
// @Router       /api/theme [get]
func (h *ThemeHandler) Active(c echo.Context) error {
	state := h.manager.State()
	return c.JSON(http.StatusOK, activeThemeResponse{
		Theme:         state.Active,
		Transitioning: state.Transitioning,
		Variables:     h.manager.Variables(),
	})
}

// Set handles PUT /api/theme.
//
// @Summary      Select the active theme
// @Tags         themes
// @Accept       json
// @Produce      json
// @Param        body  body      setThemeRequest  true  "Theme selection"
// @Success      200   {object}  activeThemeResponse
// @Failure      422   {object}  map[string]string
// @Router       /api/theme [put]
func (h *ThemeHandler) Set(c echo.Context) error {
	var req setThemeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	id := domain.ThemeID(req.Theme)
	before := h.manager.State().Active
	if err := h.manager.SetTheme(c.Request().Context(), id); err != nil {
		return err
	}
	if id != before {
		metrics.ThemeSelectionsTotal.WithLabelValues(string(id)).Inc()
	}

	state := h.manager.State()
	return c.JSON(http.StatusOK, activeThemeResponse{
		Theme:         state.Active,
		Transitioning: state.Transitioning,
		Variables:     h.manager.Variables(),
	})
}
