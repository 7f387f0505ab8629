// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// List returns one page of users ordered by creation time and the total count.
	List(ctx context.Context, offset, limit int) ([]*entity.User, int64, error)

	// UpdateRole changes the access tier of a user.
	UpdateRole(ctx context.Context, id uuid.UUID, role entity.Role) error

	// AddTotalSpent atomically adds amount to the user's lifetime spend and marks the
	// user regular when the new total reaches threshold. It reports whether the user
	// became regular with this call.
	AddTotalSpent(ctx context.Context, id uuid.UUID, amount, threshold decimal.Decimal) (bool, error)
}
