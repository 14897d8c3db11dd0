package domain

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Field length bounds enforced on submissions. The client form only checks
// minimums; the server additionally enforces the upper bounds.
const (
	NameMinLen    = 2
	NameMaxLen    = 100
	MessageMinLen = 10
	MessageMaxLen = 5000
)

// emailPattern accepts the simple local@domain.tld shape: no whitespace or
// extra @ in either part, and at least one dot in the domain.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var (
	ErrRateLimited         = errors.New("rate limited")
	ErrMailerNotConfigured = errors.New("mailer not configured")
	ErrMailerSend          = errors.New("mailer send failed")
)

// ContactSubmission carries one contact-form submission. It is constructed
// per request and never persisted.
type ContactSubmission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Trimmed returns a copy with surrounding whitespace removed from all fields.
func (s ContactSubmission) Trimmed() ContactSubmission {
	return ContactSubmission{
		Name:    strings.TrimSpace(s.Name),
		Email:   strings.TrimSpace(s.Email),
		Subject: strings.TrimSpace(s.Subject),
		Message: strings.TrimSpace(s.Message),
	}
}

// ValidEmail reports whether addr matches the accepted email shape.
func ValidEmail(addr string) bool {
	return emailPattern.MatchString(addr)
}

// ValidationError is a user-input error produced by server-side validation.
// It is data for the caller to render, not an internal failure.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// ValidateClient applies the client-form rules and returns a map from field
// name to a human-readable message. All fields are checked independently; an
// empty map means the submission is valid. Subject is required here but not
// on the server.
func ValidateClient(s ContactSubmission) map[string]string {
	t := s.Trimmed()
	errs := make(map[string]string)

	if t.Name == "" {
		errs["name"] = "Name is required"
	} else if utf8.RuneCountInString(t.Name) < NameMinLen {
		errs["name"] = "Name must be at least 2 characters"
	}

	if t.Email == "" {
		errs["email"] = "Email is required"
	} else if !ValidEmail(t.Email) {
		errs["email"] = "Please enter a valid email"
	}

	if t.Subject == "" {
		errs["subject"] = "Subject is required"
	}

	if t.Message == "" {
		errs["message"] = "Message is required"
	} else if utf8.RuneCountInString(t.Message) < MessageMinLen {
		errs["message"] = "Message must be at least 10 characters"
	}

	return errs
}

// ValidateServer re-validates a submission with the server rule set. Checks
// run in a fixed order and the first violation wins: missing required field,
// malformed email, name length, message length. Subject is optional here.
func ValidateServer(s ContactSubmission) error {
	t := s.Trimmed()

	if t.Name == "" || t.Email == "" || t.Message == "" {
		return &ValidationError{Message: "Missing required fields: name, email, and message are required."}
	}
	if !ValidEmail(t.Email) {
		return &ValidationError{Message: "Invalid email format."}
	}
	if n := utf8.RuneCountInString(t.Name); n < NameMinLen || n > NameMaxLen {
		return &ValidationError{Message: "Name must be between 2 and 100 characters."}
	}
	if n := utf8.RuneCountInString(t.Message); n < MessageMinLen || n > MessageMaxLen {
		return &ValidationError{Message: "Message must be between 10 and 5000 characters."}
	}
	return nil
}
