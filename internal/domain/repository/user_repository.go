// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"bazaar/internal/domain/entity"
	"bazaar/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrProfileNotFound is returned when a user has no profile.
	ErrProfileNotFound = errors.New("profile not found")
)

// UserRepository defines the interface for user-related database operations.
// Account and credential management are external; this core only reads and
// writes the identity and profile fields the marketplace needs.
type UserRepository interface {
	// CreateUser persists a new user together with its profile, if any.
	CreateUser(ctx context.Context, user *entity.User) error

	// FindUserByID retrieves a user with the profile and both owned
	// addresses preloaded.
	FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// UpdateUser updates the user and profile records.
	UpdateUser(ctx context.Context, user *entity.User) error
}
