package domain

import (
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when no user matches the lookup.
	ErrNotFound = errors.New("user not found")
	// ErrUsernameTaken is returned when registering an existing username.
	ErrUsernameTaken = errors.New("username already taken")
	// ErrInvalidCredentials covers both unknown username and wrong password
	// so the two cases stay indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// User is the root of ownership for every other entity. PasswordHash is
// never serialized.
type User struct {
	ID           int            `json:"id"`
	Username     string         `json:"username"`
	PasswordHash string         `json:"-"`
	FullName     *string        `json:"fullName,omitempty"`
	Email        *string        `json:"email,omitempty"`
	Settings     map[string]any `json:"settings,omitempty"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

// NewUser carries the fields needed to insert a user row.
type NewUser struct {
	Username     string
	PasswordHash string
	FullName     *string
	Email        *string
	Settings     map[string]any
}

// ProfilePatch is a partial update to the profile fields; nil means keep.
type ProfilePatch struct {
	FullName *string
	Email    *string
	Settings map[string]any
}
