package http

import (
	"context"

	"go.uber.org/zap"

	"github.com/creatorpro/backend/internal/goals/domain"
)

type GoalStore interface {
	List(ctx context.Context, userID int) ([]domain.Goal, error)
	GetByID(ctx context.Context, id, userID int) (*domain.Goal, error)
	Create(ctx context.Context, g domain.NewGoal) (*domain.Goal, error)
	Update(ctx context.Context, id, userID int, patch domain.GoalPatch) (*domain.Goal, error)
	Delete(ctx context.Context, id, userID int) error
}

type MilestoneStore interface {
	ListByGoal(ctx context.Context, goalID, userID int) ([]domain.Milestone, error)
	Create(ctx context.Context, m domain.NewMilestone, userID int) (*domain.Milestone, error)
	Update(ctx context.Context, id, userID int, patch domain.MilestonePatch) (*domain.Milestone, error)
	Delete(ctx context.Context, id, userID int) error
}

// Handler serves both the goal and milestone endpoints.
type Handler struct {
	goals      GoalStore
	milestones MilestoneStore
	log        *zap.Logger
}

func New(goals GoalStore, milestones MilestoneStore, log *zap.Logger) *Handler {
	return &Handler{goals: goals, milestones: milestones, log: log}
}
