package http

import (
	"context"

	"go.uber.org/zap"

	"github.com/creatorpro/backend/internal/timetracking/domain"
)

type Store interface {
	List(ctx context.Context, userID int) ([]domain.TimeEntry, error)
	GetByID(ctx context.Context, id, userID int) (*domain.TimeEntry, error)
	Create(ctx context.Context, e domain.NewTimeEntry) (*domain.TimeEntry, error)
	Update(ctx context.Context, id, userID int, patch domain.TimeEntryPatch) (*domain.TimeEntry, error)
	Delete(ctx context.Context, id, userID int) error
}

type Handler struct {
	store Store
	log   *zap.Logger
}

func New(store Store, log *zap.Logger) *Handler {
	return &Handler{store: store, log: log}
}
