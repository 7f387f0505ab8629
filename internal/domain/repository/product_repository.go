package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrProductNotFound is returned when a product does not exist.
	ErrProductNotFound = errors.New("product not found")
	// ErrInsufficientStock is returned when a conditional stock decrement matches no row.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// ProductRepository persists the catalog.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	Update(ctx context.Context, product *entity.Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	List(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, int64, error)

	// SetStock overwrites the stock level.
	SetStock(ctx context.Context, id uuid.UUID, stock int) error

	// DecrementStock subtracts quantity only if enough stock remains.
	// It returns ErrInsufficientStock otherwise, leaving the row unchanged.
	DecrementStock(ctx context.Context, id uuid.UUID, quantity int) error

	// IncrementStock returns quantity units to stock.
	IncrementStock(ctx context.Context, id uuid.UUID, quantity int) error
}
