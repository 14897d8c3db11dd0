package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// visitedCookie is the session-scoped flag the UI shell uses to skip the
// first-visit intro animation on later navigations. No Max-Age: the cookie
// dies with the browser session.
const visitedCookie = "hasVisited"

// SessionHandler manages the per-session visited flag.
type SessionHandler struct{}

func NewSessionHandler() *SessionHandler {
	return &SessionHandler{}
}

type visitedResponse struct {
	Visited bool `json:"visited"`
}

// GetVisited handles GET /api/session/visited.
//
// @Summary      Report whether this session has seen the intro
// @Tags         session
// @Produce      json
// @Success      200  {object}  visitedResponse
// @Router       /api/session/visited [get]
func (h *SessionHandler) GetVisited(c echo.Context) error {
	ck, err := c.Cookie(visitedCookie)
	visited := err == nil && ck.Value == "true"
	return c.JSON(http.StatusOK, visitedResponse{Visited: visited})
}

// MarkVisited handles POST /api/session/visited.
//
// @Summary      Mark the intro as seen for this session
// @Tags         session
// @Produce      json
// @Success      200  {object}  visitedResponse
// @Router       /api/session/visited [post]
func (h *SessionHandler) MarkVisited(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     visitedCookie,
		Value:    "true",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return c.JSON(http.StatusOK, visitedResponse{Visited: true})
}
