package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/liquidglass/portfolio-api/internal/core/ports"
)

// AdminHandler exposes the rate-limiter table to the operator.
type AdminHandler struct {
	limiter ports.LimiterInspector
}

func NewAdminHandler(limiter ports.LimiterInspector) *AdminHandler {
	return &AdminHandler{limiter: limiter}
}

type rateLimitListResponse struct {
	Entries []ports.RateLimitEntry `json:"entries"`
	Count   int                    `json:"count"`
}

// ListRateLimits handles GET /admin/ratelimit.
//
// @Summary      Snapshot the rate-limiter table
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  rateLimitListResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /admin/ratelimit [get]
func (h *AdminHandler) ListRateLimits(c echo.Context) error {
	entries, err := h.limiter.Entries(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rateLimitListResponse{Entries: entries, Count: len(entries)})
}

// DropRateLimit handles DELETE /admin/ratelimit/:id, resetting one client's
// budget.
//
// @Summary      Drop one client's rate-limit window
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "Client identifier"
// @Success      204
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /admin/ratelimit/{id} [delete]
func (h *AdminHandler) DropRateLimit(c echo.Context) error {
	if err := h.limiter.Drop(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
