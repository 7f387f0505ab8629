package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAuthNotFound is returned when an authentication method is not found.
var ErrAuthNotFound = errors.New("authentication method not found")

// AuthRepository defines the standard operations for credential persistence.
type AuthRepository interface {
	// CreateAuthentication persists a new credential.
	CreateAuthentication(ctx context.Context, auth *entity.Authentication) error

	// FindByUserID retrieves the credential of a user for a provider.
	FindByUserID(ctx context.Context, userID uuid.UUID, provider string) (*entity.Authentication, error)
}
