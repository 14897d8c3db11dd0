package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/liquidglass/portfolio-api/internal/core/domain"
	"github.com/liquidglass/portfolio-api/internal/core/ports"
)

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

// stubLimiter counts calls per client and denies above max.
type stubLimiter struct {
	max    int
	counts map[string]int
}

func newStubLimiter(max int) *stubLimiter {
	return &stubLimiter{max: max, counts: make(map[string]int)}
}

func (l *stubLimiter) Allow(_ context.Context, clientID string) bool {
	l.counts[clientID]++
	return l.counts[clientID] <= l.max
}

type stubMailer struct {
	sent    []ports.Email
	sendErr error
	id      string
}

func (m *stubMailer) Send(_ context.Context, msg ports.Email) (string, error) {
	if m.sendErr != nil {
		return "", m.sendErr
	}
	m.sent = append(m.sent, msg)
	return m.id, nil
}

func contactInput() ports.ContactInput {
	return ports.ContactInput{
		Submission: domain.ContactSubmission{
			Name:    "Jane Doe",
			Email:   "jane@example.com",
			Subject: "Hello",
			Message: "This message is long enough.",
		},
		ClientID: "203.0.113.7",
	}
}

// ---------------------------------------------------------------------------
// Submit
// ---------------------------------------------------------------------------

func TestContactService_Submit_Success(t *testing.T) {
	mailer := &stubMailer{id: "em_123"}
	svc := NewContactService(newStubLimiter(5), mailer, "", discardLogger)

	res, err := svc.Submit(context.Background(), contactInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Message != "Your message has been sent successfully!" {
		t.Errorf("message = %q", res.Message)
	}
	if res.ID != "em_123" {
		t.Errorf("id = %q", res.ID)
	}

	if len(mailer.sent) != 1 {
		t.Fatalf("expected 1 dispatched email, got %d", len(mailer.sent))
	}
	sent := mailer.sent[0]
	if sent.From != contactSender {
		t.Errorf("from = %q", sent.From)
	}
	if len(sent.To) != 1 || sent.To[0] != DefaultRecipient {
		t.Errorf("to = %v, want default recipient", sent.To)
	}
	if sent.Subject != "Hello" {
		t.Errorf("subject = %q", sent.Subject)
	}
	if !strings.Contains(sent.HTML, "Jane Doe") || !strings.Contains(sent.Text, "Jane Doe") {
		t.Error("sender name missing from one of the bodies")
	}
}

func TestContactService_Submit_RecipientOverride(t *testing.T) {
	mailer := &stubMailer{id: "em_1"}
	svc := NewContactService(newStubLimiter(5), mailer, "me@example.org", discardLogger)

	if _, err := svc.Submit(context.Background(), contactInput()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := mailer.sent[0].To[0]; got != "me@example.org" {
		t.Errorf("to = %q", got)
	}
}

func TestContactService_Submit_SubjectFallback(t *testing.T) {
	mailer := &stubMailer{id: "em_1"}
	svc := NewContactService(newStubLimiter(5), mailer, "", discardLogger)

	in := contactInput()
	in.Submission.Subject = ""
	if _, err := svc.Submit(context.Background(), in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := mailer.sent[0].Subject; got != "New message from Jane Doe" {
		t.Errorf("subject = %q", got)
	}
}

func TestContactService_Submit_RateLimitedBeforeValidation(t *testing.T) {
	limiter := newStubLimiter(0) // denies everything
	mailer := &stubMailer{}
	svc := NewContactService(limiter, mailer, "", discardLogger)

	// Submission is also invalid: the limiter must win.
	in := ports.ContactInput{ClientID: "203.0.113.7"}
	_, err := svc.Submit(context.Background(), in)
	if !errors.Is(err, domain.ErrRateLimited) {
		t.Fatalf("error = %v, want ErrRateLimited", err)
	}
	if len(mailer.sent) != 0 {
		t.Error("rate-limited submission reached the mailer")
	}
}

func TestContactService_Submit_SixthCallDenied(t *testing.T) {
	mailer := &stubMailer{id: "em_1"}
	svc := NewContactService(newStubLimiter(5), mailer, "", discardLogger)

	for i := 0; i < 5; i++ {
		if _, err := svc.Submit(context.Background(), contactInput()); err != nil {
			t.Fatalf("call %d: %v", i+1, err)
		}
	}
	if _, err := svc.Submit(context.Background(), contactInput()); !errors.Is(err, domain.ErrRateLimited) {
		t.Fatalf("sixth call: error = %v, want ErrRateLimited", err)
	}
}

func TestContactService_Submit_DeniedCallStillCountsPerClient(t *testing.T) {
	mailer := &stubMailer{id: "em_1"}
	svc := NewContactService(newStubLimiter(5), mailer, "", discardLogger)

	other := contactInput()
	other.ClientID = "198.51.100.9"

	for i := 0; i < 6; i++ {
		svc.Submit(context.Background(), contactInput())
	}
	// A different client has its own bucket.
	if _, err := svc.Submit(context.Background(), other); err != nil {
		t.Fatalf("other client: %v", err)
	}
}

func TestContactService_Submit_InvalidSubmission(t *testing.T) {
	mailer := &stubMailer{}
	svc := NewContactService(newStubLimiter(5), mailer, "", discardLogger)

	in := contactInput()
	in.Submission.Email = "not-an-email"
	_, err := svc.Submit(context.Background(), in)

	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("error = %v, want ValidationError", err)
	}
	if ve.Message != "Invalid email format." {
		t.Errorf("message = %q", ve.Message)
	}
	if len(mailer.sent) != 0 {
		t.Error("invalid submission reached the mailer")
	}
}

func TestContactService_Submit_NoMailerConfigured(t *testing.T) {
	svc := NewContactService(newStubLimiter(5), nil, "", discardLogger)

	_, err := svc.Submit(context.Background(), contactInput())
	if !errors.Is(err, domain.ErrMailerNotConfigured) {
		t.Fatalf("error = %v, want ErrMailerNotConfigured", err)
	}
}

func TestContactService_Submit_ProviderCheckAfterValidation(t *testing.T) {
	// An invalid submission reports the validation error, not the missing
	// provider.
	svc := NewContactService(newStubLimiter(5), nil, "", discardLogger)

	in := contactInput()
	in.Submission.Message = "short"
	_, err := svc.Submit(context.Background(), in)

	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("error = %v, want ValidationError", err)
	}
}

func TestContactService_Submit_SendFailure(t *testing.T) {
	mailer := &stubMailer{sendErr: errors.New("provider down")}
	svc := NewContactService(newStubLimiter(5), mailer, "", discardLogger)

	_, err := svc.Submit(context.Background(), contactInput())
	if !errors.Is(err, domain.ErrMailerSend) {
		t.Fatalf("error = %v, want ErrMailerSend", err)
	}
}

func TestContactService_Submit_TrimsBeforeComposing(t *testing.T) {
	mailer := &stubMailer{id: "em_1"}
	svc := NewContactService(newStubLimiter(5), mailer, "", discardLogger)

	in := contactInput()
	in.Submission.Name = "  Jane Doe  "
	in.Submission.Subject = ""
	if _, err := svc.Submit(context.Background(), in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := mailer.sent[0].Subject; got != "New message from Jane Doe" {
		t.Errorf("subject = %q; name not trimmed before composition", got)
	}
}

func TestContactService_Submit_EscapesHTMLInBody(t *testing.T) {
	mailer := &stubMailer{id: "em_1"}
	svc := NewContactService(newStubLimiter(5), mailer, "", discardLogger)

	in := contactInput()
	in.Submission.Message = `<script>alert("x")</script> plus padding`
	if _, err := svc.Submit(context.Background(), in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(mailer.sent[0].HTML, "<script>") {
		t.Error("user-controlled markup not escaped in the HTML body")
	}
}
