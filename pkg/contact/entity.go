package contact

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// StatusUnread marks a freshly stored message awaiting review.
const StatusUnread = "unread"

// Message is one contact-form submission.
type Message struct {
	ID        string    `json:"id,omitempty"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Status    string    `json:"status,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// FieldError names one invalid field with a human-readable reason.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries the structured field-error list; no partial
// persistence happens when it is returned.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validate checks the submission synchronously. Boundaries mirror the form
// contract: name >= 2, valid email, subject >= 3, message >= 10.
func (m Message) Validate() []FieldError {
	var errs []FieldError
	if len(m.Name) < 2 {
		errs = append(errs, FieldError{Field: "name", Message: "Name is required"})
	}
	if !emailPattern.MatchString(m.Email) {
		errs = append(errs, FieldError{Field: "email", Message: "Valid email required"})
	}
	if len(m.Subject) < 3 {
		errs = append(errs, FieldError{Field: "subject", Message: "Subject is required"})
	}
	if len(m.Message) < 10 {
		errs = append(errs, FieldError{Field: "message", Message: "Message is required"})
	}
	return errs
}

// Repository persists contact messages.
type Repository interface {
	SaveMessage(ctx context.Context, m Message) error
}
