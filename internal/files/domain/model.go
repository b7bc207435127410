package domain

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("file not found")

// File is a metadata record; the bytes themselves live elsewhere.
type File struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Path      string    `json:"path"`
	Type      *string   `json:"type,omitempty"`
	Size      *int      `json:"size,omitempty"`
	ProjectID *int      `json:"projectId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	UserID    int       `json:"userId"`
}

type NewFile struct {
	Name      string
	Path      string
	Type      *string
	Size      *int
	ProjectID *int
	UserID    int
}
