package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/creatorpro/backend/internal/finance/domain"
)

const txColumns = `id, description, amount::float8, type, category, date, payment_method, status, notes, created_at, updated_at, user_id`

type TransactionRepository struct {
	db *pgxpool.Pool
}

func NewTransactionRepository(db *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) List(ctx context.Context, userID int) ([]domain.Transaction, error) {
	const q = `SELECT ` + txColumns + ` FROM transactions WHERE user_id = $1 ORDER BY date DESC;`
	rows, err := r.db.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Transaction, 0, 16)
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *t)
	}
	return out, rows.Err()
}

func (r *TransactionRepository) GetByID(ctx context.Context, id, userID int) (*domain.Transaction, error) {
	const q = `SELECT ` + txColumns + ` FROM transactions WHERE id = $1 AND user_id = $2;`
	t, err := scanTransaction(r.db.QueryRow(ctx, q, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, err
	}
	return t, nil
}

func (r *TransactionRepository) Create(ctx context.Context, t domain.NewTransaction) (*domain.Transaction, error) {
	const q = `
INSERT INTO transactions (description, amount, type, category, date, payment_method, status, notes, user_id)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + txColumns + `;
`
	return scanTransaction(r.db.QueryRow(ctx, q,
		t.Description, t.Amount, t.Type, t.Category, t.Date, t.PaymentMethod, t.Status, t.Notes, t.UserID))
}

func (r *TransactionRepository) Update(ctx context.Context, id, userID int, patch domain.TransactionPatch) (*domain.Transaction, error) {
	const q = `
UPDATE transactions
SET description    = COALESCE($3, description),
    amount         = COALESCE($4, amount),
    type           = COALESCE($5, type),
    category       = COALESCE($6, category),
    date           = COALESCE($7, date),
    payment_method = COALESCE($8, payment_method),
    status         = COALESCE($9, status),
    notes          = COALESCE($10, notes),
    updated_at     = now()
WHERE id = $1 AND user_id = $2
RETURNING ` + txColumns + `;
`
	t, err := scanTransaction(r.db.QueryRow(ctx, q, id, userID,
		patch.Description, patch.Amount, patch.Type, patch.Category, patch.Date,
		patch.PaymentMethod, patch.Status, patch.Notes))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, err
	}
	return t, nil
}

func (r *TransactionRepository) Delete(ctx context.Context, id, userID int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM transactions WHERE id = $1 AND user_id = $2;`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTransactionNotFound
	}
	return nil
}

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var t domain.Transaction
	err := row.Scan(&t.ID, &t.Description, &t.Amount, &t.Type, &t.Category, &t.Date,
		&t.PaymentMethod, &t.Status, &t.Notes, &t.CreatedAt, &t.UpdatedAt, &t.UserID)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
