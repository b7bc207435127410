package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/creatorpro/backend/internal/goals/domain"
)

const goalColumns = `id, title, description, deadline, status, progress, category, created_at, updated_at, user_id`

type GoalRepository struct {
	db *pgxpool.Pool
}

func NewGoalRepository(db *pgxpool.Pool) *GoalRepository {
	return &GoalRepository{db: db}
}

func (r *GoalRepository) List(ctx context.Context, userID int) ([]domain.Goal, error) {
	const q = `SELECT ` + goalColumns + ` FROM goals WHERE user_id = $1 ORDER BY created_at DESC;`
	rows, err := r.db.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Goal, 0, 16)
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *g)
	}
	return out, rows.Err()
}

func (r *GoalRepository) GetByID(ctx context.Context, id, userID int) (*domain.Goal, error) {
	const q = `SELECT ` + goalColumns + ` FROM goals WHERE id = $1 AND user_id = $2;`
	g, err := scanGoal(r.db.QueryRow(ctx, q, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return g, nil
}

func (r *GoalRepository) Create(ctx context.Context, g domain.NewGoal) (*domain.Goal, error) {
	const q = `
INSERT INTO goals (title, description, deadline, status, progress, category, user_id)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + goalColumns + `;
`
	return scanGoal(r.db.QueryRow(ctx, q,
		g.Title, g.Description, g.Deadline, g.Status, g.Progress, g.Category, g.UserID))
}

func (r *GoalRepository) Update(ctx context.Context, id, userID int, patch domain.GoalPatch) (*domain.Goal, error) {
	const q = `
UPDATE goals
SET title       = COALESCE($3, title),
    description = COALESCE($4, description),
    deadline    = COALESCE($5, deadline),
    status      = COALESCE($6, status),
    progress    = COALESCE($7, progress),
    category    = COALESCE($8, category),
    updated_at  = now()
WHERE id = $1 AND user_id = $2
RETURNING ` + goalColumns + `;
`
	g, err := scanGoal(r.db.QueryRow(ctx, q, id, userID,
		patch.Title, patch.Description, patch.Deadline, patch.Status, patch.Progress, patch.Category))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return g, nil
}

// Delete removes the goal and its milestones in one transaction.
func (r *GoalRepository) Delete(ctx context.Context, id, userID int) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `
DELETE FROM milestones m USING goals g
WHERE m.goal_id = g.id AND g.id = $1 AND g.user_id = $2;`, id, userID); err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, `DELETE FROM goals WHERE id = $1 AND user_id = $2;`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return tx.Commit(ctx)
}

func scanGoal(row pgx.Row) (*domain.Goal, error) {
	var g domain.Goal
	err := row.Scan(&g.ID, &g.Title, &g.Description, &g.Deadline, &g.Status,
		&g.Progress, &g.Category, &g.CreatedAt, &g.UpdatedAt, &g.UserID)
	if err != nil {
		return nil, err
	}
	return &g, nil
}
