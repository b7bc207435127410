package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/creatorpro/backend/internal/files/domain"
)

const fileColumns = `id, name, path, type, size, project_id, created_at, updated_at, user_id`

type FileRepository struct {
	db *pgxpool.Pool
}

func NewFileRepository(db *pgxpool.Pool) *FileRepository {
	return &FileRepository{db: db}
}

func (r *FileRepository) List(ctx context.Context, userID int) ([]domain.File, error) {
	const q = `SELECT ` + fileColumns + ` FROM files WHERE user_id = $1 ORDER BY created_at DESC;`
	rows, err := r.db.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.File, 0, 16)
	for rows.Next() {
		f, err := scanFile(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *f)
	}
	return out, rows.Err()
}

func (r *FileRepository) Create(ctx context.Context, f domain.NewFile) (*domain.File, error) {
	const q = `
INSERT INTO files (name, path, type, size, project_id, user_id)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + fileColumns + `;
`
	return scanFile(r.db.QueryRow(ctx, q, f.Name, f.Path, f.Type, f.Size, f.ProjectID, f.UserID))
}

func (r *FileRepository) Delete(ctx context.Context, id, userID int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM files WHERE id = $1 AND user_id = $2;`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanFile(row pgx.Row) (*domain.File, error) {
	var f domain.File
	err := row.Scan(&f.ID, &f.Name, &f.Path, &f.Type, &f.Size, &f.ProjectID,
		&f.CreatedAt, &f.UpdatedAt, &f.UserID)
	if err != nil {
		return nil, err
	}
	return &f, nil
}
