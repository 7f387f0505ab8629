package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CartUsecase manages a customer's cart. Every mutation returns the resulting cart.
type CartUsecase interface {
	GetCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)
	AddItem(ctx context.Context, userID, productID uuid.UUID, quantity int) (*entity.Cart, error)
	// UpdateQuantity sets an absolute quantity; zero removes the line.
	UpdateQuantity(ctx context.Context, userID, productID uuid.UUID, quantity int) (*entity.Cart, error)
	RemoveItem(ctx context.Context, userID, productID uuid.UUID) (*entity.Cart, error)
	Clear(ctx context.Context, userID uuid.UUID) error
}
