// Package repository declares the persistence ports of the auth domain.
package repository

import (
	"context"
	"errors"

	"gatekeeper/internal/domain/entity"
)

// ErrUserNotFound is returned by the lookups when no user matches.
var ErrUserNotFound = errors.New("user not found")

// UserRepository is the user directory. Create and Update report username or email
// collisions as domain errors rather than raw driver errors.
type UserRepository interface {
	// FindByUsername matches the username exactly, including disabled accounts.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create assigns user.ID and the timestamps on success.
	Create(ctx context.Context, user *entity.User) error

	// Update saves the mutable profile columns of an existing user.
	Update(ctx context.Context, user *entity.User) error
}
