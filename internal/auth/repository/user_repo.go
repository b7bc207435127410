package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/creatorpro/backend/internal/auth/domain"
)

const userColumns = `id, username, password, full_name, email, settings, created_at, updated_at`

// UserRepository provides persistence operations for users.
type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u domain.NewUser) (*domain.User, error) {
	const q = `
INSERT INTO users (username, password, full_name, email, settings)
VALUES ($1, $2, $3, $4, COALESCE($5, '{}'::jsonb))
RETURNING ` + userColumns + `;
`
	row := r.db.QueryRow(ctx, q, u.Username, u.PasswordHash, u.FullName, u.Email, u.Settings)
	user, err := scanUser(row)
	if err != nil {
		// unique violation on username
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrUsernameTaken
		}
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int) (*domain.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE id = $1;`
	return r.get(ctx, q, id)
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE username = $1;`
	return r.get(ctx, q, username)
}

// UpdateProfile applies a partial update to the profile fields.
func (r *UserRepository) UpdateProfile(ctx context.Context, id int, patch domain.ProfilePatch) (*domain.User, error) {
	const q = `
UPDATE users
SET full_name = COALESCE($2, full_name),
    email     = COALESCE($3, email),
    settings  = COALESCE($4, settings),
    updated_at = now()
WHERE id = $1
RETURNING ` + userColumns + `;
`
	row := r.db.QueryRow(ctx, q, id, patch.FullName, patch.Email, patch.Settings)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

// Count reports the total number of user rows. The seeder uses it to skip
// seeding on a non-empty database.
func (r *UserRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM users;`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *UserRepository) get(ctx context.Context, q string, arg any) (*domain.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx, q, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.FullName, &u.Email, &u.Settings, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
