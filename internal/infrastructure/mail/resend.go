// Package mail implements the outbound email provider port on top of the
// Resend API.
package mail

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"

	"github.com/liquidglass/portfolio-api/internal/core/ports"
)

// Resend dispatches transactional email through resend.com.
type Resend struct {
	client *resend.Client
}

// NewResend builds a mailer from the API credential. Callers should treat an
// empty key as "provider unconfigured" and not construct a mailer at all.
func NewResend(apiKey string) *Resend {
	return &Resend{client: resend.NewClient(apiKey)}
}

// Send submits one message and returns the provider's message id.
func (r *Resend) Send(ctx context.Context, msg ports.Email) (string, error) {
	sent, err := r.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    msg.From,
		To:      msg.To,
		Subject: msg.Subject,
		Html:    msg.HTML,
		Text:    msg.Text,
	})
	if err != nil {
		return "", fmt.Errorf("resend send: %w", err)
	}
	return sent.Id, nil
}
