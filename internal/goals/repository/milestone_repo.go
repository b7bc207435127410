package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/creatorpro/backend/internal/goals/domain"
)

// MilestoneRepository persists milestones. Milestones have no user_id
// column, so every operation joins through goals and filters on the goal
// owner; a milestone under someone else's goal is indistinguishable from a
// missing one.
type MilestoneRepository struct {
	db *pgxpool.Pool
}

func NewMilestoneRepository(db *pgxpool.Pool) *MilestoneRepository {
	return &MilestoneRepository{db: db}
}

func (r *MilestoneRepository) ListByGoal(ctx context.Context, goalID, userID int) ([]domain.Milestone, error) {
	const q = `
SELECT m.id, m.goal_id, m.title, m.completed, m.created_at, m.updated_at
FROM milestones m
JOIN goals g ON g.id = m.goal_id
WHERE m.goal_id = $1 AND g.user_id = $2
ORDER BY m.created_at;
`
	rows, err := r.db.Query(ctx, q, goalID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Milestone, 0, 8)
	for rows.Next() {
		m, err := scanMilestone(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *m)
	}
	return out, rows.Err()
}

// Create inserts a milestone after verifying the goal belongs to the user.
func (r *MilestoneRepository) Create(ctx context.Context, m domain.NewMilestone, userID int) (*domain.Milestone, error) {
	const q = `
INSERT INTO milestones (goal_id, title)
SELECT g.id, $2 FROM goals g WHERE g.id = $1 AND g.user_id = $3
RETURNING id, goal_id, title, completed, created_at, updated_at;
`
	ms, err := scanMilestone(r.db.QueryRow(ctx, q, m.GoalID, m.Title, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return ms, nil
}

func (r *MilestoneRepository) Update(ctx context.Context, id, userID int, patch domain.MilestonePatch) (*domain.Milestone, error) {
	const q = `
UPDATE milestones m
SET title      = COALESCE($3, m.title),
    completed  = COALESCE($4, m.completed),
    updated_at = now()
FROM goals g
WHERE m.id = $1 AND g.id = m.goal_id AND g.user_id = $2
RETURNING m.id, m.goal_id, m.title, m.completed, m.created_at, m.updated_at;
`
	ms, err := scanMilestone(r.db.QueryRow(ctx, q, id, userID, patch.Title, patch.Completed))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrMilestoneNotFound
		}
		return nil, err
	}
	return ms, nil
}

func (r *MilestoneRepository) Delete(ctx context.Context, id, userID int) error {
	const q = `
DELETE FROM milestones m USING goals g
WHERE m.id = $1 AND g.id = m.goal_id AND g.user_id = $2;
`
	tag, err := r.db.Exec(ctx, q, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrMilestoneNotFound
	}
	return nil
}

func scanMilestone(row pgx.Row) (*domain.Milestone, error) {
	var m domain.Milestone
	err := row.Scan(&m.ID, &m.GoalID, &m.Title, &m.Completed, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
