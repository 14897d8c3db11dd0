package ports

import (
	"context"

	"github.com/liquidglass/portfolio-api/internal/core/domain"
)

// ContactInput is the DTO the HTTP layer hands to the contact service.
type ContactInput struct {
	Submission domain.ContactSubmission
	ClientID   string
}

// ContactResult is returned on a successful dispatch.
type ContactResult struct {
	Message string
	ID      string
}

// ContactService runs the server side of the submission pipeline: rate limit
// check, re-validation, email composition and dispatch.
type ContactService interface {
	Submit(ctx context.Context, in ContactInput) (ContactResult, error)
}

// Email is a composed transactional message ready for the provider.
type Email struct {
	From    string
	To      []string
	Subject string
	HTML    string
	Text    string
}

// Mailer abstracts the email delivery provider. Send returns the provider's
// message identifier.
type Mailer interface {
	Send(ctx context.Context, msg Email) (string, error)
}
