package http

import (
	"context"

	"go.uber.org/zap"

	"github.com/creatorpro/backend/internal/projects/domain"
)

// Store is the repository surface the handlers depend on.
type Store interface {
	List(ctx context.Context, userID int) ([]domain.Project, error)
	GetByID(ctx context.Context, id, userID int) (*domain.Project, error)
	Create(ctx context.Context, p domain.NewProject) (*domain.Project, error)
	Update(ctx context.Context, id, userID int, patch domain.ProjectPatch) (*domain.Project, error)
	Delete(ctx context.Context, id, userID int) error
}

// Handler bundles the dependencies for project HTTP endpoints.
type Handler struct {
	store Store
	log   *zap.Logger
}

func New(store Store, log *zap.Logger) *Handler {
	return &Handler{store: store, log: log}
}
