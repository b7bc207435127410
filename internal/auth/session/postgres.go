package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// querier is the slice of the pgx pool the store uses.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
}

// PostgresStore keeps sessions in a sessions table with an expires_at
// column. Reads filter on expires_at; expired rows are also deleted
// lazily on lookup.
type PostgresStore struct {
	db  querier
	ttl time.Duration
}

func NewPostgresStore(db *pgxpool.Pool, ttl time.Duration) *PostgresStore {
	return &PostgresStore{db: db, ttl: ttl}
}

func (s *PostgresStore) Create(ctx context.Context, userID int) (string, error) {
	token := uuid.NewString()
	const q = `INSERT INTO sessions (token, user_id, expires_at) VALUES ($1, $2, $3);`
	if _, err := s.db.Exec(ctx, q, token, userID, time.Now().Add(s.ttl)); err != nil {
		return "", err
	}
	return token, nil
}

func (s *PostgresStore) Get(ctx context.Context, token string) (int, error) {
	// Drop the row on the spot when it has expired.
	if _, err := s.db.Exec(ctx, `DELETE FROM sessions WHERE token = $1 AND expires_at <= now();`, token); err != nil {
		return 0, err
	}

	// The read carries its own expiry filter so a row expiring between
	// the two statements still reads as gone.
	var userID int
	err := s.db.QueryRow(ctx,
		`SELECT user_id FROM sessions WHERE token = $1 AND expires_at > now();`, token,
	).Scan(&userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrNotFound
		}
		return 0, err
	}
	return userID, nil
}

func (s *PostgresStore) Renew(ctx context.Context, token string) error {
	const q = `UPDATE sessions SET expires_at = $2 WHERE token = $1;`
	_, err := s.db.Exec(ctx, q, token, time.Now().Add(s.ttl))
	return err
}

func (s *PostgresStore) Destroy(ctx context.Context, token string) error {
	_, err := s.db.Exec(ctx, `DELETE FROM sessions WHERE token = $1;`, token)
	return err
}

func (s *PostgresStore) TTL() time.Duration { return s.ttl }

func (s *PostgresStore) Ping(ctx context.Context) error { return s.db.Ping(ctx) }
