package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/jobmatch/jobmatch-api/internal/core/domain"
	"github.com/jobmatch/jobmatch-api/internal/core/ports"
)

const minPasswordLen = 6

// AuthService implements registration, login and credential management.
type AuthService struct {
	repo     ports.AuthRepository
	profiles ports.ProfileRepository
	sessions ports.SessionStore
	log      zerolog.Logger
}

func NewAuthService(repo ports.AuthRepository, profiles ports.ProfileRepository, sessions ports.SessionStore, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, profiles: profiles, sessions: sessions, log: log}
}

func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	name := strings.TrimSpace(in.Name)
	email := normalizeEmail(in.Email)
	role := in.Role
	if role == "" {
		role = domain.RoleSeeker
	}

	if name == "" || email == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: all fields are required", domain.ErrValidation)
	}
	if !domain.ValidRole(role) {
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrValidation, role)
	}

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("email", email).Str("role", role).Msg("user registered")
	return created, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if domain.HashedPassword(user.PasswordHash) {
		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
			return nil, domain.ErrInvalidCredentials
		}
	} else {
		// Legacy plaintext credential: a verbatim match is upgraded to a
		// bcrypt hash before the session is issued.
		if user.PasswordHash != password {
			return nil, domain.ErrInvalidCredentials
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		if err := s.repo.UpdatePassword(ctx, user.ID, string(hash)); err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
		s.log.Info().Str("email", email).Msg("legacy credential upgraded to bcrypt")
	}

	token, err := s.sessions.Issue(ctx, domain.Identity{
		UserID: user.ID,
		Role:   user.Role,
		Email:  user.Email,
		Name:   user.Name,
	})
	if err != nil {
		return nil, err
	}

	result := &ports.LoginResult{Token: token, User: user}
	if user.Role == domain.RoleSeeker {
		if _, err := s.profiles.FindSeekerByEmail(ctx, user.Email); err == nil {
			result.HasProfile = true
		}
	}
	return result, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.Revoke(ctx, token)
}

func (s *AuthService) ChangePassword(ctx context.Context, ident domain.Identity, current, next, confirm string) error {
	user, err := s.repo.FindByEmail(ctx, ident.Email)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(current)) != nil {
		return domain.ErrInvalidCredentials
	}
	if len(next) < minPasswordLen {
		return fmt.Errorf("%w: new password must be at least %d characters", domain.ErrValidation, minPasswordLen)
	}
	if next != confirm {
		return fmt.Errorf("%w: new password and confirmation do not match", domain.ErrValidation)
	}
	if next == current {
		return fmt.Errorf("%w: new password cannot equal the current password", domain.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.repo.UpdatePassword(ctx, user.ID, string(hash))
}

func (s *AuthService) CheckEmail(ctx context.Context, email string) (bool, string, error) {
	email = normalizeEmail(email)
	if email == "" {
		return false, "", fmt.Errorf("%w: email is required", domain.ErrValidation)
	}
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return false, "", nil
	}
	return true, user.Role, nil
}

func (s *AuthService) ResetPassword(ctx context.Context, email, next, confirm string) error {
	email = normalizeEmail(email)
	if email == "" || next == "" || confirm == "" {
		return fmt.Errorf("%w: all fields are required", domain.ErrValidation)
	}
	if next != confirm {
		return fmt.Errorf("%w: passwords do not match", domain.ErrValidation)
	}
	if len(next) < minPasswordLen {
		return fmt.Errorf("%w: password must be at least %d characters", domain.ErrValidation, minPasswordLen)
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return domain.ErrUserNotFound
	}
	if domain.HashedPassword(user.PasswordHash) &&
		bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(next)) == nil {
		return fmt.Errorf("%w: new password cannot equal the current password", domain.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.repo.UpdatePassword(ctx, user.ID, string(hash))
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
