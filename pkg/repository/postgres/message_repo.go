package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dancanmurithi/portfolio/pkg/contact"
)

// MessageRepository stores contact-form submissions. Unlike the content
// tables, this one belongs to the service, so the repository ensures its
// schema on construction.
type MessageRepository struct {
	pool *pgxpool.Pool
}

func NewMessageRepository(pool *pgxpool.Pool) (*MessageRepository, error) {
	r := &MessageRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *MessageRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS contact_messages (
	id UUID PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT NOT NULL,
	subject TEXT NOT NULL,
	message TEXT NOT NULL,
	status TEXT NOT NULL DEFAULT 'unread',
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_contact_messages_status ON contact_messages(status);
`)
	return err
}

func (r *MessageRepository) SaveMessage(ctx context.Context, m contact.Message) error {
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	_, err := r.pool.Exec(ctx, `
INSERT INTO contact_messages (id, name, email, subject, message, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
`, m.ID, m.Name, m.Email, m.Subject, m.Message, m.Status, m.CreatedAt)
	return err
}
