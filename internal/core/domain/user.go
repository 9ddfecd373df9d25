package domain

import (
	"errors"
	"strings"
	"time"
)

const (
	RoleSeeker  = "seeker"
	RoleCompany = "company"
)

var (
	ErrValidation         = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrSessionNotFound    = errors.New("session not found")
)

// User models a registered account. Role is fixed at registration time;
// only the password hash and display name change afterwards.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ValidRole reports whether role is one of the two account kinds.
func ValidRole(role string) bool {
	return role == RoleSeeker || role == RoleCompany
}

// HashedPassword reports whether a stored credential is a bcrypt hash.
// Anything else is a legacy plaintext credential eligible for a one-time
// upgrade on successful login.
func HashedPassword(stored string) bool {
	return strings.HasPrefix(stored, "$2")
}
