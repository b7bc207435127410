package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/creatorpro/backend/internal/timetracking/domain"
)

const entryColumns = `id, project_id, description, start_time, end_time, duration, billable, created_at, updated_at, user_id`

type TimeEntryRepository struct {
	db *pgxpool.Pool
}

func NewTimeEntryRepository(db *pgxpool.Pool) *TimeEntryRepository {
	return &TimeEntryRepository{db: db}
}

func (r *TimeEntryRepository) List(ctx context.Context, userID int) ([]domain.TimeEntry, error) {
	const q = `SELECT ` + entryColumns + ` FROM time_entries WHERE user_id = $1 ORDER BY start_time DESC;`
	rows, err := r.db.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.TimeEntry, 0, 16)
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *e)
	}
	return out, rows.Err()
}

func (r *TimeEntryRepository) GetByID(ctx context.Context, id, userID int) (*domain.TimeEntry, error) {
	const q = `SELECT ` + entryColumns + ` FROM time_entries WHERE id = $1 AND user_id = $2;`
	e, err := scanEntry(r.db.QueryRow(ctx, q, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *TimeEntryRepository) Create(ctx context.Context, e domain.NewTimeEntry) (*domain.TimeEntry, error) {
	const q = `
INSERT INTO time_entries (project_id, description, start_time, end_time, duration, billable, user_id)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + entryColumns + `;
`
	return scanEntry(r.db.QueryRow(ctx, q,
		e.ProjectID, e.Description, e.StartTime, e.EndTime, e.Duration, e.Billable, e.UserID))
}

func (r *TimeEntryRepository) Update(ctx context.Context, id, userID int, patch domain.TimeEntryPatch) (*domain.TimeEntry, error) {
	const q = `
UPDATE time_entries
SET project_id  = COALESCE($3, project_id),
    description = COALESCE($4, description),
    start_time  = COALESCE($5, start_time),
    end_time    = COALESCE($6, end_time),
    duration    = COALESCE($7, duration),
    billable    = COALESCE($8, billable),
    updated_at  = now()
WHERE id = $1 AND user_id = $2
RETURNING ` + entryColumns + `;
`
	e, err := scanEntry(r.db.QueryRow(ctx, q, id, userID,
		patch.ProjectID, patch.Description, patch.StartTime, patch.EndTime, patch.Duration, patch.Billable))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *TimeEntryRepository) Delete(ctx context.Context, id, userID int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM time_entries WHERE id = $1 AND user_id = $2;`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanEntry(row pgx.Row) (*domain.TimeEntry, error) {
	var e domain.TimeEntry
	err := row.Scan(&e.ID, &e.ProjectID, &e.Description, &e.StartTime, &e.EndTime,
		&e.Duration, &e.Billable, &e.CreatedAt, &e.UpdatedAt, &e.UserID)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
