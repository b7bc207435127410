// Command seed fills an empty database with a demo account and a
// representative set of business records. It refuses to touch a database
// that already has users.
package main

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/creatorpro/backend/config"
	authrepo "github.com/creatorpro/backend/internal/auth/repository"
	"github.com/creatorpro/backend/internal/db"
)

func main() {
	log, _ := zap.NewDevelopment()
	defer log.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("invalid configuration", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	database, err := db.Open(ctx, cfg.Database)
	if err != nil {
		log.Fatal("database unavailable", zap.Error(err))
	}
	defer database.Close()

	users := authrepo.NewUserRepository(database.Pool)
	count, err := users.Count(ctx)
	if err != nil {
		log.Fatal("count users", zap.Error(err))
	}
	if count > 0 {
		log.Info("database already has users, skipping seed", zap.Int("users", count))
		return
	}

	if err := seed(ctx, database); err != nil {
		log.Fatal("seed failed", zap.Error(err))
	}
	log.Info("seed complete", zap.String("username", "demo"))
}

func seed(ctx context.Context, database *db.DB) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	tx, err := database.Pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var userID int
	err = tx.QueryRow(ctx, `
INSERT INTO users (username, password, full_name, email, settings)
VALUES ('demo', $1, 'Demo Creator', 'demo@example.com', '{"theme":"light","currency":"USD"}')
RETURNING id;`, string(hash)).Scan(&userID)
	if err != nil {
		return err
	}

	var clientID int
	err = tx.QueryRow(ctx, `
INSERT INTO clients (name, company, email, phone, status, notes, user_id)
VALUES ('Ava Martinez', 'Northwind Studio', 'ava@northwind.example', '+1 555 0100', 'active',
        'Met at the design conference, prefers email.', $1)
RETURNING id;`, userID).Scan(&clientID)
	if err != nil {
		return err
	}

	var projectID int
	err = tx.QueryRow(ctx, `
INSERT INTO projects (name, description, client_id, status, due_date, progress, user_id)
VALUES ('Brand refresh', 'Logo, color palette and landing page for Northwind.',
        $1, 'active', now() + interval '30 days', 40, $2)
RETURNING id;`, clientID, userID).Scan(&projectID)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `
INSERT INTO time_entries (project_id, description, start_time, end_time, duration, billable, user_id)
VALUES
  ($1, 'Moodboard and references', now() - interval '2 days', now() - interval '2 days' + interval '90 minutes', 90, TRUE, $2),
  ($1, 'Logo sketches',            now() - interval '1 day',  now() - interval '1 day' + interval '135 minutes', 135, TRUE, $2);`,
		projectID, userID)
	if err != nil {
		return err
	}

	var goalID int
	err = tx.QueryRow(ctx, `
INSERT INTO goals (title, description, deadline, status, progress, category, user_id)
VALUES ('Reach $5k monthly revenue', 'Grow retainer work to cover the studio rent.',
        now() + interval '90 days', 'active', 25, 'financial', $1)
RETURNING id;`, userID).Scan(&goalID)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `
INSERT INTO milestones (goal_id, title, completed)
VALUES
  ($1, 'Sign two retainer clients', FALSE),
  ($1, 'Raise hourly rate to $85', TRUE);`, goalID)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `
INSERT INTO transactions (description, amount, type, category, date, payment_method, status, user_id)
VALUES
  ('Brand refresh deposit', 1200.00, 'income',  'design',    now() - interval '5 days', 'paypal', 'completed', $1),
  ('Font license',            89.00, 'expense', 'software',  now() - interval '3 days', 'card',   'completed', $1);`,
		userID)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `
INSERT INTO invoices (client_id, amount, status, issue_date, due_date, items, notes, user_id)
VALUES ($1, 1200.00, 'unpaid', now(), now() + interval '14 days',
        '[{"description":"Logo design","quantity":1,"rate":800},{"description":"Landing page","quantity":1,"rate":400}]',
        'Net 14.', $2);`, clientID, userID)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `
INSERT INTO messages (sender_id, recipient_id, content)
VALUES ($1, $1, 'Welcome to CreatorPro! This is your inbox.');`, userID)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `
INSERT INTO files (name, path, type, size, project_id, user_id)
VALUES ('brand-brief.pdf', '/uploads/demo/brand-brief.pdf', 'application/pdf', 182400, $1, $2);`,
		projectID, userID)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}
