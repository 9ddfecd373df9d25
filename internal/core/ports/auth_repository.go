package ports

import (
	"context"

	"github.com/jobmatch/jobmatch-api/internal/core/domain"
)

// AuthRepository defines persistence for user accounts.
type AuthRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// UpdatePassword replaces the stored credential. Used for password change,
	// reset, and the one-time legacy plaintext upgrade during login.
	UpdatePassword(ctx context.Context, userID int64, passwordHash string) error
	// UpdateName keeps the account display name in sync with profile edits.
	UpdateName(ctx context.Context, userID int64, name string) error
}
