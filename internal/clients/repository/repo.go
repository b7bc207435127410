package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/creatorpro/backend/internal/clients/domain"
)

const clientColumns = `id, name, company, email, phone, address, status, notes, created_at, updated_at, user_id`

type ClientRepository struct {
	db *pgxpool.Pool
}

func NewClientRepository(db *pgxpool.Pool) *ClientRepository {
	return &ClientRepository{db: db}
}

func (r *ClientRepository) List(ctx context.Context, userID int) ([]domain.Client, error) {
	const q = `SELECT ` + clientColumns + ` FROM clients WHERE user_id = $1 ORDER BY created_at DESC;`
	rows, err := r.db.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Client, 0, 16)
	for rows.Next() {
		cl, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *cl)
	}
	return out, rows.Err()
}

func (r *ClientRepository) GetByID(ctx context.Context, id, userID int) (*domain.Client, error) {
	const q = `SELECT ` + clientColumns + ` FROM clients WHERE id = $1 AND user_id = $2;`
	cl, err := scanClient(r.db.QueryRow(ctx, q, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return cl, nil
}

func (r *ClientRepository) Create(ctx context.Context, c domain.NewClient) (*domain.Client, error) {
	const q = `
INSERT INTO clients (name, company, email, phone, address, status, notes, user_id)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + clientColumns + `;
`
	return scanClient(r.db.QueryRow(ctx, q,
		c.Name, c.Company, c.Email, c.Phone, c.Address, c.Status, c.Notes, c.UserID))
}

func (r *ClientRepository) Update(ctx context.Context, id, userID int, patch domain.ClientPatch) (*domain.Client, error) {
	const q = `
UPDATE clients
SET name       = COALESCE($3, name),
    company    = COALESCE($4, company),
    email      = COALESCE($5, email),
    phone      = COALESCE($6, phone),
    address    = COALESCE($7, address),
    status     = COALESCE($8, status),
    notes      = COALESCE($9, notes),
    updated_at = now()
WHERE id = $1 AND user_id = $2
RETURNING ` + clientColumns + `;
`
	cl, err := scanClient(r.db.QueryRow(ctx, q, id, userID,
		patch.Name, patch.Company, patch.Email, patch.Phone, patch.Address, patch.Status, patch.Notes))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return cl, nil
}

func (r *ClientRepository) Delete(ctx context.Context, id, userID int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM clients WHERE id = $1 AND user_id = $2;`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanClient(row pgx.Row) (*domain.Client, error) {
	var c domain.Client
	err := row.Scan(&c.ID, &c.Name, &c.Company, &c.Email, &c.Phone, &c.Address,
		&c.Status, &c.Notes, &c.CreatedAt, &c.UpdatedAt, &c.UserID)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
