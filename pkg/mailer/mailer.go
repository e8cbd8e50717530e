package mailer

import "context"

// Email is one outbound message.
type Email struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	ReplyTo string   `json:"reply_to,omitempty"`
	HTML    string   `json:"html"`
}

// Sender is a minimal abstraction over a transactional email provider.
// It intentionally hides concrete providers to preserve dependency direction.
type Sender interface {
	Send(ctx context.Context, email Email) error
}
