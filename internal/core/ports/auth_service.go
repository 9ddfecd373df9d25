package ports

import (
	"context"

	"github.com/jobmatch/jobmatch-api/internal/core/domain"
)

// RegisterInput carries the registration form fields.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// LoginResult is returned on successful login. HasProfile tells seeker
// clients whether to land on the dashboard or the initial bio form.
type LoginResult struct {
	Token      string
	User       *domain.User
	HasProfile bool
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Logout(ctx context.Context, token string) error
	ChangePassword(ctx context.Context, ident domain.Identity, current, next, confirm string) error
	// CheckEmail backs the forgot-password flow: reports whether an account
	// exists and, if so, its role.
	CheckEmail(ctx context.Context, email string) (exists bool, role string, err error)
	ResetPassword(ctx context.Context, email, next, confirm string) error
}
