package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/creatorpro/backend/internal/finance/domain"
)

const invoiceColumns = `id, client_id, amount::float8, status, issue_date, due_date, items, notes, created_at, updated_at, user_id`

// InvoiceRepository persists invoices. Line items stay an opaque jsonb
// value from insert to read.
type InvoiceRepository struct {
	db *pgxpool.Pool
}

func NewInvoiceRepository(db *pgxpool.Pool) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

func (r *InvoiceRepository) List(ctx context.Context, userID int) ([]domain.Invoice, error) {
	const q = `SELECT ` + invoiceColumns + ` FROM invoices WHERE user_id = $1 ORDER BY issue_date DESC;`
	rows, err := r.db.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Invoice, 0, 16)
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *inv)
	}
	return out, rows.Err()
}

func (r *InvoiceRepository) GetByID(ctx context.Context, id, userID int) (*domain.Invoice, error) {
	const q = `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1 AND user_id = $2;`
	inv, err := scanInvoice(r.db.QueryRow(ctx, q, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrInvoiceNotFound
		}
		return nil, err
	}
	return inv, nil
}

func (r *InvoiceRepository) Create(ctx context.Context, inv domain.NewInvoice) (*domain.Invoice, error) {
	const q = `
INSERT INTO invoices (client_id, amount, status, issue_date, due_date, items, notes, user_id)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + invoiceColumns + `;
`
	return scanInvoice(r.db.QueryRow(ctx, q,
		inv.ClientID, inv.Amount, inv.Status, inv.IssueDate, inv.DueDate, inv.Items, inv.Notes, inv.UserID))
}

func (r *InvoiceRepository) Update(ctx context.Context, id, userID int, patch domain.InvoicePatch) (*domain.Invoice, error) {
	const q = `
UPDATE invoices
SET client_id  = COALESCE($3, client_id),
    amount     = COALESCE($4, amount),
    status     = COALESCE($5, status),
    issue_date = COALESCE($6, issue_date),
    due_date   = COALESCE($7, due_date),
    items      = COALESCE($8, items),
    notes      = COALESCE($9, notes),
    updated_at = now()
WHERE id = $1 AND user_id = $2
RETURNING ` + invoiceColumns + `;
`
	inv, err := scanInvoice(r.db.QueryRow(ctx, q, id, userID,
		patch.ClientID, patch.Amount, patch.Status, patch.IssueDate, patch.DueDate, patch.Items, patch.Notes))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrInvoiceNotFound
		}
		return nil, err
	}
	return inv, nil
}

func (r *InvoiceRepository) Delete(ctx context.Context, id, userID int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM invoices WHERE id = $1 AND user_id = $2;`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrInvoiceNotFound
	}
	return nil
}

func scanInvoice(row pgx.Row) (*domain.Invoice, error) {
	var inv domain.Invoice
	err := row.Scan(&inv.ID, &inv.ClientID, &inv.Amount, &inv.Status, &inv.IssueDate,
		&inv.DueDate, &inv.Items, &inv.Notes, &inv.CreatedAt, &inv.UpdatedAt, &inv.UserID)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}
