package contact

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/dancanmurithi/portfolio/pkg/mailer"
)

var ErrStoreUnavailable = errors.New("message store unavailable")

// UseCase relays a contact submission: validate, persist with status
// "unread", then send the notification email.
type UseCase interface {
	Send(ctx context.Context, msg Message) error
}

type service struct {
	repo     Repository
	mail     mailer.Sender
	notifyTo string
}

// NewService wires the relay. mail may be nil and notifyTo empty when email
// credentials are not configured; the notification step is then skipped.
func NewService(repo Repository, mail mailer.Sender, notifyTo string) UseCase {
	return &service{repo: repo, mail: mail, notifyTo: notifyTo}
}

func (s *service) Send(ctx context.Context, msg Message) error {
	if fieldErrs := msg.Validate(); len(fieldErrs) > 0 {
		return &ValidationError{Fields: fieldErrs}
	}
	if s.repo == nil {
		return ErrStoreUnavailable
	}

	msg.ID = uuid.NewString()
	msg.Status = StatusUnread
	msg.CreatedAt = time.Now().UTC()
	if err := s.repo.SaveMessage(ctx, msg); err != nil {
		return fmt.Errorf("save message: %w", err)
	}

	// The row is already durable at this point, yet a notification failure
	// still fails the whole request: the frontend treats delivery as part
	// of the feature.
	if err := s.notify(ctx, msg); err != nil {
		return fmt.Errorf("send notification email: %w", err)
	}
	return nil
}

func (s *service) notify(ctx context.Context, msg Message) error {
	if s.mail == nil || s.notifyTo == "" {
		log.Print("contact: email credentials not configured; skipping email send")
		return nil
	}
	email := mailer.Email{
		From:    "Portfolio Contact <onboarding@resend.dev>",
		To:      []string{s.notifyTo},
		Subject: "New portfolio inquiry: " + msg.Subject,
		ReplyTo: msg.Email,
		HTML: fmt.Sprintf(
			`<h2>New Message from %s</h2>
<p><strong>Email:</strong> %s</p>
<p><strong>Subject:</strong> %s</p>
<p><strong>Message:</strong></p>
<pre style="white-space:pre-wrap;font-family:inherit;">%s</pre>`,
			html.EscapeString(msg.Name),
			html.EscapeString(msg.Email),
			html.EscapeString(msg.Subject),
			html.EscapeString(msg.Message),
		),
	}
	return s.mail.Send(ctx, email)
}
