package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/liquidglass/portfolio-api/internal/core/domain"
	"github.com/liquidglass/portfolio-api/internal/core/ports"
)

// DefaultRecipient receives contact messages when no override is configured.
const DefaultRecipient = "aa5178@fayoum.edu.eg"

const successMessage = "Your message has been sent successfully!"

type contactService struct {
	limiter   ports.RateLimiter
	mailer    ports.Mailer // nil when the provider credential is absent
	recipient string
	log       zerolog.Logger
	now       nowFunc
}

// NewContactService wires the submission pipeline. A nil mailer marks the
// provider as unconfigured; submissions then fail with
// domain.ErrMailerNotConfigured after validation.
func NewContactService(limiter ports.RateLimiter, mailer ports.Mailer, recipient string, log zerolog.Logger) ports.ContactService {
	if recipient == "" {
		recipient = DefaultRecipient
	}
	return &contactService{
		limiter:   limiter,
		mailer:    mailer,
		recipient: recipient,
		log:       log,
		now:       defaultNow,
	}
}

// Submit runs the server side of the pipeline in order: rate limit, field
// re-validation, provider-config check, compose, dispatch. A submission only
// reaches the provider once every earlier step has passed.
func (s *contactService) Submit(ctx context.Context, in ports.ContactInput) (ports.ContactResult, error) {
	if !s.limiter.Allow(ctx, in.ClientID) {
		s.log.Warn().Str("client_id", in.ClientID).Msg("contact submission rate limited")
		return ports.ContactResult{}, domain.ErrRateLimited
	}

	if err := domain.ValidateServer(in.Submission); err != nil {
		return ports.ContactResult{}, err
	}

	if s.mailer == nil {
		// Deployment error, not a user error: surface a generic message and
		// leave the detail in the operator log.
		s.log.Error().Msg("RESEND_API_KEY is not configured")
		return ports.ContactResult{}, domain.ErrMailerNotConfigured
	}

	sub := in.Submission.Trimmed()
	msg, err := composeEmail(sub, s.recipient, s.now().UTC())
	if err != nil {
		return ports.ContactResult{}, fmt.Errorf("submit contact: compose: %w", err)
	}

	id, err := s.mailer.Send(ctx, msg)
	if err != nil {
		s.log.Error().Err(err).Str("client_id", in.ClientID).Msg("email dispatch failed")
		return ports.ContactResult{}, fmt.Errorf("submit contact: %w", domain.ErrMailerSend)
	}

	s.log.Info().
		Str("client_id", in.ClientID).
		Str("message_id", id).
		Msg("contact message sent")

	return ports.ContactResult{Message: successMessage, ID: id}, nil
}
