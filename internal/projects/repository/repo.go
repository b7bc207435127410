package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/creatorpro/backend/internal/projects/domain"
)

const projectColumns = `id, name, description, client_id, status, due_date, progress, created_at, updated_at, user_id`

// ProjectRepository provides persistence operations for projects. Every
// by-id query filters on the owner so a foreign id behaves like a missing
// one.
type ProjectRepository struct {
	db *pgxpool.Pool
}

func NewProjectRepository(db *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) List(ctx context.Context, userID int) ([]domain.Project, error) {
	const q = `
SELECT ` + projectColumns + `
FROM projects
WHERE user_id = $1
ORDER BY created_at DESC;
`
	rows, err := r.db.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Project, 0, 16)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

func (r *ProjectRepository) GetByID(ctx context.Context, id, userID int) (*domain.Project, error) {
	const q = `SELECT ` + projectColumns + ` FROM projects WHERE id = $1 AND user_id = $2;`
	p, err := scanProject(r.db.QueryRow(ctx, q, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *ProjectRepository) Create(ctx context.Context, p domain.NewProject) (*domain.Project, error) {
	const q = `
INSERT INTO projects (name, description, client_id, status, due_date, progress, user_id)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + projectColumns + `;
`
	return scanProject(r.db.QueryRow(ctx, q,
		p.Name, p.Description, p.ClientID, p.Status, p.DueDate, p.Progress, p.UserID))
}

func (r *ProjectRepository) Update(ctx context.Context, id, userID int, patch domain.ProjectPatch) (*domain.Project, error) {
	const q = `
UPDATE projects
SET name        = COALESCE($3, name),
    description = COALESCE($4, description),
    client_id   = COALESCE($5, client_id),
    status      = COALESCE($6, status),
    due_date    = COALESCE($7, due_date),
    progress    = COALESCE($8, progress),
    updated_at  = now()
WHERE id = $1 AND user_id = $2
RETURNING ` + projectColumns + `;
`
	p, err := scanProject(r.db.QueryRow(ctx, q, id, userID,
		patch.Name, patch.Description, patch.ClientID, patch.Status, patch.DueDate, patch.Progress))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

// Delete removes the project row. Time entries that reference it are left
// untouched.
func (r *ProjectRepository) Delete(ctx context.Context, id, userID int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM projects WHERE id = $1 AND user_id = $2;`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanProject(row pgx.Row) (*domain.Project, error) {
	var p domain.Project
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.ClientID, &p.Status,
		&p.DueDate, &p.Progress, &p.CreatedAt, &p.UpdatedAt, &p.UserID)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
