// Package contactform implements the client side of the contact-submission
// pipeline: local validation, the call to the contact endpoint, and the
// Idle/Sending/Success lifecycle the form UI renders.
package contactform

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/liquidglass/portfolio-api/internal/core/domain"
)

// State is the form's lifecycle position.
type State string

// The observable resting states. Validation and send failures both settle
// back in StateIdle: the outcome is surfaced through FieldErrors or
// LastError, not a state of its own.
const (
	StateIdle    State = "idle"
	StateSending State = "sending"
	StateSuccess State = "success"
)

// successHold is how long the success state is shown before the fields reset.
const successHold = 3 * time.Second

const fallbackError = "Failed to send message. Please try again."

var (
	// ErrInvalid marks a submission stopped by local validation; the
	// per-field messages are available from FieldErrors.
	ErrInvalid = errors.New("submission invalid")
	// ErrSendFailed marks a network or server failure; the user-facing
	// message is available from LastError and the fields are kept so the
	// user can retry without re-typing.
	ErrSendFailed = errors.New("send failed")
	// ErrInFlight rejects a Submit while a previous one is still pending.
	ErrInFlight = errors.New("submission in flight")
)

// Fields is the editable form state.
type Fields struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// Option configures a Form.
type Option func(*Form)

// WithHTTPClient overrides the default http.Client.
func WithHTTPClient(c *http.Client) Option {
	return func(f *Form) { f.client = c }
}

// WithSuccessHold overrides how long success is displayed before reset.
func WithSuccessHold(d time.Duration) Option {
	return func(f *Form) { f.hold = d }
}

// WithOnSuccess registers a callback fired after the post-success reset.
func WithOnSuccess(fn func()) Option {
	return func(f *Form) { f.onSuccess = fn }
}

// Form drives one contact form instance against the API endpoint.
type Form struct {
	endpoint  string
	client    *http.Client
	hold      time.Duration
	onSuccess func()

	mu          sync.Mutex
	fields      Fields
	state       State
	fieldErrors map[string]string
	lastError   string
	holdTimer   *time.Timer
}

// New creates an idle form posting to endpoint (e.g. "https://site/api/contact").
func New(endpoint string, opts ...Option) *Form {
	f := &Form{
		endpoint: endpoint,
		client:   http.DefaultClient,
		hold:     successHold,
		state:    StateIdle,
	}
	for _, o := range opts {
		o(f)
	}
	return f
}

// SetFields replaces the editable field state.
func (f *Form) SetFields(fields Fields) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fields = fields
}

// Fields returns the current field state.
func (f *Form) Fields() Fields {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields
}

// State returns the lifecycle position.
func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// FieldErrors returns the messages from the last failed validation.
func (f *Form) FieldErrors() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]string, len(f.fieldErrors))
	for k, v := range f.fieldErrors {
		out[k] = v
	}
	return out
}

// LastError returns the user-facing message from the last failed send.
func (f *Form) LastError() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastError
}

type submitPayload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type submitResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      string `json:"id"`
	Error   string `json:"error"`
}

// Submit runs the pipeline: validate locally, post the trimmed fields, and
// map the response onto the lifecycle. An invalid submission never reaches
// the network and drops back to idle with per-field messages. On success the
// form shows StateSuccess for the hold duration, then resets its fields and
// fires the completion callback. On a send failure the form returns to idle
// with LastError set and the fields kept so the user can retry.
func (f *Form) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.state == StateSending {
		f.mu.Unlock()
		return ErrInFlight
	}
	// Re-submitting during the success hold abandons the pending reset so it
	// cannot wipe the new submission's fields.
	if f.holdTimer != nil {
		f.holdTimer.Stop()
		f.holdTimer = nil
	}

	sub := domain.ContactSubmission{
		Name:    f.fields.Name,
		Email:   f.fields.Email,
		Subject: f.fields.Subject,
		Message: f.fields.Message,
	}
	if errs := domain.ValidateClient(sub); len(errs) > 0 {
		f.fieldErrors = errs
		f.state = StateIdle
		f.mu.Unlock()
		return ErrInvalid
	}

	f.fieldErrors = nil
	f.lastError = ""
	f.state = StateSending
	trimmed := sub.Trimmed()
	f.mu.Unlock()

	resp, err := f.post(ctx, trimmed)
	if err != nil {
		f.failWith(fallbackError)
		return ErrSendFailed
	}
	if !resp.Success {
		msg := resp.Error
		if msg == "" {
			msg = fallbackError
		}
		f.failWith(msg)
		return ErrSendFailed
	}

	f.mu.Lock()
	f.state = StateSuccess
	var t *time.Timer
	t = time.AfterFunc(f.hold, func() {
		f.mu.Lock()
		if f.holdTimer != t {
			// Abandoned by a newer submission.
			f.mu.Unlock()
			return
		}
		f.fields = Fields{}
		f.state = StateIdle
		f.holdTimer = nil
		f.mu.Unlock()
		if f.onSuccess != nil {
			f.onSuccess()
		}
	})
	f.holdTimer = t
	f.mu.Unlock()
	return nil
}

func (f *Form) post(ctx context.Context, sub domain.ContactSubmission) (*submitResponse, error) {
	body, err := json.Marshal(submitPayload{
		Name:    sub.Name,
		Email:   sub.Email,
		Subject: sub.Subject,
		Message: sub.Message,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	var out submitResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (f *Form) failWith(msg string) {
	f.mu.Lock()
	f.lastError = msg
	f.state = StateIdle
	f.mu.Unlock()
}
