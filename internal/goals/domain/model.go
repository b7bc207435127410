package domain

import (
	"errors"
	"time"
)

var (
	ErrNotFound          = errors.New("goal not found")
	ErrMilestoneNotFound = errors.New("milestone not found")
)

type Goal struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	Status      string     `json:"status"`
	Progress    int        `json:"progress"`
	Category    *string    `json:"category,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	UserID      int        `json:"userId"`
}

type NewGoal struct {
	Title       string
	Description *string
	Deadline    *time.Time
	Status      string
	Progress    int
	Category    *string
	UserID      int
}

type GoalPatch struct {
	Title       *string
	Description *string
	Deadline    *time.Time
	Status      *string
	Progress    *int
	Category    *string
}

// Milestone carries no user_id of its own; ownership is always derived
// through its goal.
type Milestone struct {
	ID        int       `json:"id"`
	GoalID    int       `json:"goalId"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type NewMilestone struct {
	GoalID int
	Title  string
}

type MilestonePatch struct {
	Title     *string
	Completed *bool
}
