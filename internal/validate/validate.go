// Package validate holds the pure validation and sanitization rules applied
// to contact-form input before it reaches persistence.
package validate

import (
	"regexp"
	"strings"

	"github.com/portfolio/backend/internal/model"
)

// Error codes surfaced per field.
const (
	ErrRequired      = "required"
	ErrInvalidFormat = "invalid_format"
	ErrTooShort      = "too_short"
	ErrTooLong       = "too_long"
)

const (
	// MinMessageLength is the minimum trimmed message length.
	MinMessageLength = 10
	// MaxMessageLength caps message size to keep admin views and storage sane.
	MaxMessageLength = 5000
)

// emailShape requires local@domain.tld: a run without whitespace or "@",
// an "@", another run, a ".", and a final run.
var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Form checks every field of the input independently and returns a map from
// field name to error code for each failing field. An empty map means the
// input is acceptable. Rules are not short-circuited so the caller can surface
// all problems at once.
func Form(in model.FormInput) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(in.Name) == "" {
		errs["name"] = ErrRequired
	}

	email := strings.TrimSpace(in.Email)
	if email == "" {
		errs["email"] = ErrRequired
	} else if !emailShape.MatchString(email) {
		errs["email"] = ErrInvalidFormat
	}

	if strings.TrimSpace(in.Subject) == "" {
		errs["subject"] = ErrRequired
	}

	msg := strings.TrimSpace(in.Message)
	switch {
	case msg == "":
		errs["message"] = ErrRequired
	case len([]rune(msg)) < MinMessageLength:
		errs["message"] = ErrTooShort
	case len([]rune(msg)) > MaxMessageLength:
		errs["message"] = ErrTooLong
	}

	return errs
}

// Sanitize strips every "<" and ">" from the text, then trims leading and
// trailing whitespace. Stripping before trimming keeps the function
// idempotent: angle brackets at the edges cannot re-expose whitespace that a
// second pass would then remove.
func Sanitize(s string) string {
	s = strings.ReplaceAll(s, "<", "")
	s = strings.ReplaceAll(s, ">", "")
	return strings.TrimSpace(s)
}

// SanitizeForm applies Sanitize to every field of the input.
func SanitizeForm(in model.FormInput) model.FormInput {
	return model.FormInput{
		Name:    Sanitize(in.Name),
		Email:   Sanitize(in.Email),
		Subject: Sanitize(in.Subject),
		Message: Sanitize(in.Message),
	}
}
