// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"marquee/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrUserNotFound is returned when a user lookup matches no record.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the interface for user persistence operations.
type UserRepository interface {
	// CreateUser persists a new user account.
	CreateUser(ctx context.Context, user *entity.User) error

	// FindUserByID retrieves a user by their unique ID.
	FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindUserByEmail retrieves a user by their email address.
	FindUserByEmail(ctx context.Context, email string) (*entity.User, error)

	// UpdateUser updates an existing user record.
	UpdateUser(ctx context.Context, user *entity.User) error
}
