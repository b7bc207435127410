// Package session implements the server-side session store binding a
// browser cookie token to an authenticated user id.
package session

import (
	"context"
	"errors"
	"time"
)

// CookieName is the session cookie issued to the browser.
const CookieName = "creatorpro_session"

// ErrNotFound is returned for unknown or expired session tokens.
var ErrNotFound = errors.New("session not found")

// Store persists sessions with TTL-based expiry. Tokens are opaque and
// unguessable; Get on an expired token behaves like an unknown one.
type Store interface {
	// Create issues a new session token for the user.
	Create(ctx context.Context, userID int) (string, error)
	// Get resolves a token to its user id.
	Get(ctx context.Context, token string) (int, error)
	// Renew extends the session lifetime by the store's TTL.
	Renew(ctx context.Context, token string) error
	// Destroy removes the session. Unknown tokens are not an error.
	Destroy(ctx context.Context, token string) error
	// TTL reports the configured session lifetime.
	TTL() time.Duration
}
