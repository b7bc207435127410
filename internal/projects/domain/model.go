package domain

import (
	"errors"
	"time"
)

// ErrNotFound covers both a missing row and a row owned by another user;
// callers cannot tell the two apart.
var ErrNotFound = errors.New("project not found")

type Project struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Description *string    `json:"description,omitempty"`
	ClientID    *int       `json:"clientId,omitempty"`
	Status      string     `json:"status"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	Progress    int        `json:"progress"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	UserID      int        `json:"userId"`
}

// NewProject carries the insert fields; UserID is stamped from the session.
type NewProject struct {
	Name        string
	Description *string
	ClientID    *int
	Status      string
	DueDate     *time.Time
	Progress    int
	UserID      int
}

// ProjectPatch is a partial update; nil fields keep the stored value.
type ProjectPatch struct {
	Name        *string
	Description *string
	ClientID    *int
	Status      *string
	DueDate     *time.Time
	Progress    *int
}
