package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Stats aggregates the numbers shown on the dashboard overview.
type Stats struct {
	ActiveProjects     int     `json:"activeProjects"`
	MonthlyIncome      float64 `json:"monthlyIncome"`
	MonthlyExpenses    float64 `json:"monthlyExpenses"`
	UnpaidInvoiceTotal float64 `json:"unpaidInvoiceTotal"`
	BillableMinutes    int     `json:"billableMinutes"`
}

type StatsRepository struct {
	pool *pgxpool.Pool
}

func NewStatsRepository(pool *pgxpool.Pool) *StatsRepository {
	return &StatsRepository{pool: pool}
}

// Get computes all dashboard aggregates for one user. Month boundaries
// use the first of the current calendar month, the week starts on the
// most recent Monday.
func (r *StatsRepository) Get(ctx context.Context, userID int) (*Stats, error) {
	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	weekday := int(now.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	weekStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).
		AddDate(0, 0, -(weekday - 1))

	stats := &Stats{}

	err := r.pool.QueryRow(ctx,
		`SELECT count(*) FROM projects WHERE user_id = $1 AND status = 'active'`,
		userID,
	).Scan(&stats.ActiveProjects)
	if err != nil {
		return nil, fmt.Errorf("count active projects: %w", err)
	}

	err = r.pool.QueryRow(ctx,
		`SELECT
			COALESCE(SUM(amount) FILTER (WHERE type = 'income'), 0)::float8,
			COALESCE(SUM(amount) FILTER (WHERE type = 'expense'), 0)::float8
		 FROM transactions
		 WHERE user_id = $1 AND date >= $2`,
		userID, monthStart,
	).Scan(&stats.MonthlyIncome, &stats.MonthlyExpenses)
	if err != nil {
		return nil, fmt.Errorf("sum monthly transactions: %w", err)
	}

	err = r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0)::float8
		 FROM invoices
		 WHERE user_id = $1 AND status = 'unpaid'`,
		userID,
	).Scan(&stats.UnpaidInvoiceTotal)
	if err != nil {
		return nil, fmt.Errorf("sum unpaid invoices: %w", err)
	}

	err = r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(duration), 0)
		 FROM time_entries
		 WHERE user_id = $1 AND billable AND start_time >= $2`,
		userID, weekStart,
	).Scan(&stats.BillableMinutes)
	if err != nil {
		return nil, fmt.Errorf("sum billable minutes: %w", err)
	}

	return stats, nil
}
