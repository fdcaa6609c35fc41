// Package session provides the server-side session store backing admin
// authentication. Sessions are keyed by an opaque random token; the store is
// injected into handlers and middleware, never held as a package global.
package session

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("session not found")

type Session struct {
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

type Store interface {
	// Create establishes a session for username and returns the raw token.
	Create(ctx context.Context, username string) (string, error)
	// Get resolves a raw token to its session, or ErrNotFound.
	Get(ctx context.Context, token string) (*Session, error)
	// Destroy removes the session; destroying an absent session is not an error.
	Destroy(ctx context.Context, token string) error
}
