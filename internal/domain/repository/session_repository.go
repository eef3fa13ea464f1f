package repository

import (
	"context"

	"nearshop/internal/domain/entity"
)

// SessionRepository exchanges credentials for a session at the backend's
// login boundary. Session lifecycle (refresh, logout) is out of scope; the
// engine only needs a bearer token to enrich and mutate subscriptions.
type SessionRepository interface {
	// Login authenticates and returns the session, or an error wrapping
	// ErrUnauthorized when the credentials are rejected.
	Login(ctx context.Context, email, password string) (*entity.Session, error)
}
