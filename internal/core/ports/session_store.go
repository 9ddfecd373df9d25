package ports

import (
	"context"

	"github.com/jobmatch/jobmatch-api/internal/core/domain"
)

// SessionStore issues and resolves opaque server-side session tokens.
// Revoke invalidates a session immediately; an expired or revoked token
// resolves to domain.ErrSessionNotFound.
type SessionStore interface {
	Issue(ctx context.Context, ident domain.Identity) (token string, err error)
	Resolve(ctx context.Context, token string) (*domain.Identity, error)
	Revoke(ctx context.Context, token string) error
}
