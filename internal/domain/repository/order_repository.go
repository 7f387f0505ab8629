package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrOrderNotFound is returned when an order does not exist.
	ErrOrderNotFound = errors.New("order not found")
	// ErrOrderStatusChanged is returned when a guarded status update finds the order in another status.
	ErrOrderStatusChanged = errors.New("order status changed concurrently")
)

// OrderRepository persists orders and their items.
type OrderRepository interface {
	// Create inserts the order header and all of its items.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID returns the order with items loaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	List(ctx context.Context, filter entity.OrderFilter) ([]*entity.Order, int64, error)

	// UpdateStatus moves the order from one status to another, failing with
	// ErrOrderStatusChanged when the current status is not from.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.OrderStatus) error
}
