package http

import (
	"context"

	"go.uber.org/zap"

	"github.com/creatorpro/backend/internal/clients/domain"
)

type Store interface {
	List(ctx context.Context, userID int) ([]domain.Client, error)
	GetByID(ctx context.Context, id, userID int) (*domain.Client, error)
	Create(ctx context.Context, c domain.NewClient) (*domain.Client, error)
	Update(ctx context.Context, id, userID int, patch domain.ClientPatch) (*domain.Client, error)
	Delete(ctx context.Context, id, userID int) error
}

type Handler struct {
	store Store
	log   *zap.Logger
}

func New(store Store, log *zap.Logger) *Handler {
	return &Handler{store: store, log: log}
}
