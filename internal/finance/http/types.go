package http

import (
	"context"

	"go.uber.org/zap"

	"github.com/creatorpro/backend/internal/finance/domain"
)

type TransactionStore interface {
	List(ctx context.Context, userID int) ([]domain.Transaction, error)
	GetByID(ctx context.Context, id, userID int) (*domain.Transaction, error)
	Create(ctx context.Context, t domain.NewTransaction) (*domain.Transaction, error)
	Update(ctx context.Context, id, userID int, patch domain.TransactionPatch) (*domain.Transaction, error)
	Delete(ctx context.Context, id, userID int) error
}

type InvoiceStore interface {
	List(ctx context.Context, userID int) ([]domain.Invoice, error)
	GetByID(ctx context.Context, id, userID int) (*domain.Invoice, error)
	Create(ctx context.Context, inv domain.NewInvoice) (*domain.Invoice, error)
	Update(ctx context.Context, id, userID int, patch domain.InvoicePatch) (*domain.Invoice, error)
	Delete(ctx context.Context, id, userID int) error
}

// Handler serves the transaction and invoice endpoints.
type Handler struct {
	transactions TransactionStore
	invoices     InvoiceStore
	log          *zap.Logger
}

func New(transactions TransactionStore, invoices InvoiceStore, log *zap.Logger) *Handler {
	return &Handler{transactions: transactions, invoices: invoices, log: log}
}
