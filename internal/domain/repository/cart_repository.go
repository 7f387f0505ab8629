package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCartItemNotFound is returned when the product is not in the user's cart.
var ErrCartItemNotFound = errors.New("cart item not found")

// CartRepository persists cart lines.
type CartRepository interface {
	// ListByUser returns the user's cart lines with their products loaded.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CartItem, error)

	// AddQuantity adds quantity to the line for (user, product), creating it if needed.
	// It returns the resulting quantity.
	AddQuantity(ctx context.Context, userID, productID uuid.UUID, quantity int) (int, error)

	// SetQuantity overwrites the quantity of an existing line.
	SetQuantity(ctx context.Context, userID, productID uuid.UUID, quantity int) error

	Remove(ctx context.Context, userID, productID uuid.UUID) error
	Clear(ctx context.Context, userID uuid.UUID) error
}
