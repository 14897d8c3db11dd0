package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/liquidglass/portfolio-api/internal/api/metrics"
	"github.com/liquidglass/portfolio-api/internal/core/domain"
	"github.com/liquidglass/portfolio-api/internal/core/ports"
)

// Fixed user-facing failure strings. Plain sentences only; provider and
// configuration detail stays in the operator log.
const (
	msgRateLimited   = "Too many requests. Please try again later."
	msgUnconfigured  = "Email service is not configured. Please contact the administrator."
	msgSendFailed    = "Failed to send email. Please try again later."
	msgUnexpected    = "An unexpected error occurred. Please try again later."
	msgMethodBlocked = "Method not allowed"
)

// ContactHandler handles the contact-form endpoint. It renders its own
// success/error envelope instead of the shared error handler so the response
// shape matches what the web client expects.
type ContactHandler struct {
	service ports.ContactService
}

func NewContactHandler(service ports.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

// Submit handles POST /api/contact.
//
// @Summary      Submit a contact-form message
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        body  body      contactRequest  true  "Submission fields"
// @Success      200   {object}  contactResponse
// @Failure      400   {object}  contactResponse
// @Failure      429   {object}  contactResponse
// @Failure      500   {object}  contactResponse
// @Router       /api/contact [post]
func (h *ContactHandler) Submit(c echo.Context) error {
	start := time.Now()
	defer func() { metrics.ContactHandlerDuration.Observe(time.Since(start).Seconds()) }()

	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusInternalServerError, contactResponse{Success: false, Error: msgUnexpected})
	}

	result, err := h.service.Submit(c.Request().Context(), ports.ContactInput{
		Submission: domain.ContactSubmission{
			Name:    req.Name,
			Email:   req.Email,
			Subject: req.Subject,
			Message: req.Message,
		},
		ClientID: clientID(c),
	})
	if err != nil {
		return h.fail(c, err)
	}

	metrics.ContactSubmissionsTotal.WithLabelValues("sent").Inc()
	return c.JSON(http.StatusOK, contactResponse{
		Success: true,
		Message: result.Message,
		ID:      result.ID,
	})
}

// MethodNotAllowed handles GET /api/contact, which is explicitly rejected.
//
// @Summary      Rejected method on the contact endpoint
// @Tags         contact
// @Produce      json
// @Failure      405  {object}  contactResponse
// @Router       /api/contact [get]
func (h *ContactHandler) MethodNotAllowed(c echo.Context) error {
	return c.JSON(http.StatusMethodNotAllowed, contactResponse{Success: false, Error: msgMethodBlocked})
}

func (h *ContactHandler) fail(c echo.Context, err error) error {
	var ve *domain.ValidationError
	switch {
	case errors.Is(err, domain.ErrRateLimited):
		metrics.ContactSubmissionsTotal.WithLabelValues("rate_limited").Inc()
		return c.JSON(http.StatusTooManyRequests, contactResponse{Success: false, Error: msgRateLimited})
	case errors.As(err, &ve):
		metrics.ContactSubmissionsTotal.WithLabelValues("invalid").Inc()
		return c.JSON(http.StatusBadRequest, contactResponse{Success: false, Error: ve.Message})
	case errors.Is(err, domain.ErrMailerNotConfigured):
		metrics.ContactSubmissionsTotal.WithLabelValues("unconfigured").Inc()
		return c.JSON(http.StatusInternalServerError, contactResponse{Success: false, Error: msgUnconfigured})
	case errors.Is(err, domain.ErrMailerSend):
		metrics.ContactSubmissionsTotal.WithLabelValues("send_failed").Inc()
		return c.JSON(http.StatusInternalServerError, contactResponse{Success: false, Error: msgSendFailed})
	default:
		metrics.ContactSubmissionsTotal.WithLabelValues("send_failed").Inc()
		return c.JSON(http.StatusInternalServerError, contactResponse{Success: false, Error: msgUnexpected})
	}
}

// clientID buckets rate-limit counts by forwarded address. Requests with no
// forwarding headers share the literal "unknown" bucket; this mirrors the
// deployment behind a proxy where the headers are always present.
func clientID(c echo.Context) string {
	if v := c.Request().Header.Get("X-Forwarded-For"); v != "" {
		if i := strings.IndexByte(v, ','); i >= 0 {
			return strings.TrimSpace(v[:i])
		}
		return strings.TrimSpace(v)
	}
	if v := c.Request().Header.Get("X-Real-IP"); v != "" {
		return strings.TrimSpace(v)
	}
	return "unknown"
}
