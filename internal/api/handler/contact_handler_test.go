package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/liquidglass/portfolio-api/internal/core/domain"
	"github.com/liquidglass/portfolio-api/internal/core/ports"
)

type stubContactService struct {
	submitFn func(ctx context.Context, in ports.ContactInput) (ports.ContactResult, error)
	lastIn   ports.ContactInput
}

func (s *stubContactService) Submit(ctx context.Context, in ports.ContactInput) (ports.ContactResult, error) {
	s.lastIn = in
	return s.submitFn(ctx, in)
}

func postContact(t *testing.T, h *ContactHandler, body string, headers map[string]string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Submit(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return rec, resp
}

func TestContactHandler_Submit_Success(t *testing.T) {
	stub := &stubContactService{
		submitFn: func(_ context.Context, in ports.ContactInput) (ports.ContactResult, error) {
			if in.Submission.Name != "Jane" || in.Submission.Email != "jane@example.com" {
				t.Fatalf("unexpected submission: %+v", in.Submission)
			}
			return ports.ContactResult{Message: "Your message has been sent successfully!", ID: "em_9"}, nil
		},
	}
	h := NewContactHandler(stub)

	body := `{"name":"Jane","email":"jane@example.com","subject":"Hi","message":"A long enough message."}`
	rec, resp := postContact(t, h, body, nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if resp["success"] != true {
		t.Error("success should be true")
	}
	if resp["message"] != "Your message has been sent successfully!" {
		t.Errorf("message = %v", resp["message"])
	}
	if resp["id"] != "em_9" {
		t.Errorf("id = %v", resp["id"])
	}
	if _, present := resp["error"]; present {
		t.Error("error key must be omitted on success")
	}
}

func TestContactHandler_Submit_RateLimited(t *testing.T) {
	stub := &stubContactService{
		submitFn: func(_ context.Context, _ ports.ContactInput) (ports.ContactResult, error) {
			return ports.ContactResult{}, domain.ErrRateLimited
		},
	}
	rec, resp := postContact(t, NewContactHandler(stub), `{}`, nil)

	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
	if resp["success"] != false {
		t.Error("success should be false")
	}
	if resp["error"] != "Too many requests. Please try again later." {
		t.Errorf("error = %v", resp["error"])
	}
}

func TestContactHandler_Submit_ValidationError(t *testing.T) {
	stub := &stubContactService{
		submitFn: func(_ context.Context, _ ports.ContactInput) (ports.ContactResult, error) {
			return ports.ContactResult{}, &domain.ValidationError{
				Message: "Missing required fields: name, email, and message are required.",
			}
		},
	}
	rec, resp := postContact(t, NewContactHandler(stub), `{"name":"Jane"}`, nil)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if resp["error"] != "Missing required fields: name, email, and message are required." {
		t.Errorf("error = %v", resp["error"])
	}
}

func TestContactHandler_Submit_MailerNotConfigured(t *testing.T) {
	stub := &stubContactService{
		submitFn: func(_ context.Context, _ ports.ContactInput) (ports.ContactResult, error) {
			return ports.ContactResult{}, domain.ErrMailerNotConfigured
		},
	}
	rec, resp := postContact(t, NewContactHandler(stub), `{}`, nil)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if resp["error"] != "Email service is not configured. Please contact the administrator." {
		t.Errorf("error = %v", resp["error"])
	}
}

func TestContactHandler_Submit_SendFailure(t *testing.T) {
	stub := &stubContactService{
		submitFn: func(_ context.Context, _ ports.ContactInput) (ports.ContactResult, error) {
			return ports.ContactResult{}, domain.ErrMailerSend
		},
	}
	rec, resp := postContact(t, NewContactHandler(stub), `{}`, nil)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if resp["error"] != "Failed to send email. Please try again later." {
		t.Errorf("error = %v", resp["error"])
	}
}

func TestContactHandler_Submit_UnexpectedError(t *testing.T) {
	stub := &stubContactService{
		submitFn: func(_ context.Context, _ ports.ContactInput) (ports.ContactResult, error) {
			return ports.ContactResult{}, errors.New("boom")
		},
	}
	rec, resp := postContact(t, NewContactHandler(stub), `{}`, nil)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if resp["error"] != "An unexpected error occurred. Please try again later." {
		t.Errorf("error = %v", resp["error"])
	}
}

func TestContactHandler_ClientID_ForwardedFor(t *testing.T) {
	stub := &stubContactService{
		submitFn: func(_ context.Context, _ ports.ContactInput) (ports.ContactResult, error) {
			return ports.ContactResult{Message: "ok"}, nil
		},
	}
	h := NewContactHandler(stub)

	postContact(t, h, `{}`, map[string]string{
		"X-Forwarded-For": " 203.0.113.7 , 10.0.0.1",
		"X-Real-IP":       "198.51.100.1",
	})
	if stub.lastIn.ClientID != "203.0.113.7" {
		t.Errorf("client id = %q, want first forwarded entry", stub.lastIn.ClientID)
	}

	postContact(t, h, `{}`, map[string]string{"X-Real-IP": "198.51.100.1"})
	if stub.lastIn.ClientID != "198.51.100.1" {
		t.Errorf("client id = %q, want real-ip fallback", stub.lastIn.ClientID)
	}

	postContact(t, h, `{}`, nil)
	if stub.lastIn.ClientID != "unknown" {
		t.Errorf("client id = %q, want the shared unknown bucket", stub.lastIn.ClientID)
	}
}

func TestContactHandler_MethodNotAllowed(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/contact", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewContactHandler(&stubContactService{})
	if err := h.MethodNotAllowed(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["success"] != false || resp["error"] != "Method not allowed" {
		t.Errorf("payload = %v", resp)
	}
}
