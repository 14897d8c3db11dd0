package service

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/liquidglass/portfolio-api/internal/core/domain"
	"github.com/liquidglass/portfolio-api/internal/core/ports"
)

// contactSender is the fixed provider-verified sender identity.
const contactSender = "Portfolio Contact <onboarding@resend.dev>"

type nowFunc func() time.Time

func defaultNow() time.Time { return time.Now() }

type emailData struct {
	Name    string
	Email   string
	Subject string
	Message string
	SentAt  string
}

// contactHTML renders the operator-facing notification. html/template escapes
// the user-controlled fields.
var contactHTML = template.Must(template.New("contact").Parse(`<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8">
    <title>New Contact Form Submission</title>
  </head>
  <body style="margin:0;padding:0;font-family:-apple-system,'Segoe UI',Roboto,Arial,sans-serif;background-color:#f5f5f5;">
    <table width="100%" cellpadding="0" cellspacing="0" style="background-color:#f5f5f5;padding:20px;">
      <tr><td align="center">
        <table width="600" cellpadding="0" cellspacing="0" style="background-color:#ffffff;border-radius:12px;overflow:hidden;">
          <tr>
            <td style="background:linear-gradient(135deg,#667eea 0%,#764ba2 100%);padding:40px 30px;text-align:center;">
              <h1 style="margin:0;color:#ffffff;font-size:28px;">New Contact Message</h1>
              <p style="margin:10px 0 0 0;color:rgba(255,255,255,0.9);font-size:16px;">Someone reached out through your portfolio</p>
            </td>
          </tr>
          <tr>
            <td style="padding:40px 30px;">
              <div style="background-color:#f8f9fa;border-left:4px solid #667eea;padding:20px;margin-bottom:30px;border-radius:8px;">
                <h2 style="margin:0 0 15px 0;color:#333;font-size:18px;">Sender Information</h2>
                <p style="margin:8px 0;color:#555;font-size:15px;"><strong style="color:#333;">Name:</strong> {{.Name}}</p>
                <p style="margin:8px 0;color:#555;font-size:15px;"><strong style="color:#333;">Email:</strong>
                  <a href="mailto:{{.Email}}" style="color:#667eea;text-decoration:none;">{{.Email}}</a></p>
                {{if .Subject}}<p style="margin:8px 0;color:#555;font-size:15px;"><strong style="color:#333;">Subject:</strong> {{.Subject}}</p>{{end}}
              </div>
              <div style="margin-bottom:30px;">
                <h2 style="margin:0 0 15px 0;color:#333;font-size:18px;">Message</h2>
                <div style="border:1px solid #e0e0e0;padding:20px;border-radius:8px;white-space:pre-wrap;color:#555;font-size:15px;line-height:1.8;">{{.Message}}</div>
              </div>
            </td>
          </tr>
          <tr>
            <td style="background-color:#f8f9fa;padding:20px 30px;text-align:center;border-top:1px solid #e0e0e0;">
              <p style="margin:0;color:#999;font-size:13px;">This email was sent from your portfolio contact form</p>
              <p style="margin:8px 0 0 0;color:#999;font-size:12px;">Sent on {{.SentAt}}</p>
            </td>
          </tr>
        </table>
      </td></tr>
    </table>
  </body>
</html>
`))

// composeEmail builds the HTML and plain-text bodies for one submission.
// Fields are expected to be trimmed already.
func composeEmail(sub domain.ContactSubmission, recipient string, at time.Time) (ports.Email, error) {
	subject := sub.Subject
	if subject == "" {
		subject = "New message from " + sub.Name
	}

	sentAt := at.Format("Monday, January 2, 2006 at 3:04 PM")

	var html strings.Builder
	if err := contactHTML.Execute(&html, emailData{
		Name:    sub.Name,
		Email:   sub.Email,
		Subject: sub.Subject,
		Message: sub.Message,
		SentAt:  sentAt,
	}); err != nil {
		return ports.Email{}, err
	}

	var text strings.Builder
	text.WriteString("New Contact Form Submission\n\n")
	fmt.Fprintf(&text, "From: %s\nEmail: %s\n", sub.Name, sub.Email)
	if sub.Subject != "" {
		fmt.Fprintf(&text, "Subject: %s\n", sub.Subject)
	}
	fmt.Fprintf(&text, "\nMessage:\n%s\n\n---\nSent on %s\n", sub.Message, sentAt)

	return ports.Email{
		From:    contactSender,
		To:      []string{recipient},
		Subject: subject,
		HTML:    html.String(),
		Text:    text.String(),
	}, nil
}
