package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/creatorpro/backend/internal/messages/domain"
)

const messageColumns = `id, sender_id, recipient_id, content, read, sent_at, created_at, updated_at`

type MessageRepository struct {
	db *pgxpool.Pool
}

func NewMessageRepository(db *pgxpool.Pool) *MessageRepository {
	return &MessageRepository{db: db}
}

// List returns the user's conversation rows, sent and received.
func (r *MessageRepository) List(ctx context.Context, userID int) ([]domain.Message, error) {
	const q = `
SELECT ` + messageColumns + `
FROM messages
WHERE sender_id = $1 OR recipient_id = $1
ORDER BY sent_at DESC;
`
	rows, err := r.db.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Message, 0, 16)
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *m)
	}
	return out, rows.Err()
}

func (r *MessageRepository) Create(ctx context.Context, m domain.NewMessage) (*domain.Message, error) {
	const q = `
INSERT INTO messages (sender_id, recipient_id, content)
VALUES ($1, $2, $3)
RETURNING ` + messageColumns + `;
`
	return scanMessage(r.db.QueryRow(ctx, q, m.SenderID, m.RecipientID, m.Content))
}

// MarkRead flags the message read; only the recipient may do so.
func (r *MessageRepository) MarkRead(ctx context.Context, id, userID int) (*domain.Message, error) {
	const q = `
UPDATE messages
SET read = true, updated_at = now()
WHERE id = $1 AND recipient_id = $2
RETURNING ` + messageColumns + `;
`
	m, err := scanMessage(r.db.QueryRow(ctx, q, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return m, nil
}

func scanMessage(row pgx.Row) (*domain.Message, error) {
	var m domain.Message
	err := row.Scan(&m.ID, &m.SenderID, &m.RecipientID, &m.Content, &m.Read,
		&m.SentAt, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
