package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// Actor is the authenticated caller of an operation.
type Actor struct {
	UserID uuid.UUID
	Role   entity.Role
}

// PlaceOrderInput defines checkout options for the caller's cart.
type PlaceOrderInput struct {
	DeliveryAddress string
	DiscountCode    string
}

// OrderPage is one page of orders.
type OrderPage struct {
	Orders   []*entity.Order
	Total    int64
	Page     int
	PageSize int
}

// OrderUsecase turns carts into orders and manages fulfilment.
type OrderUsecase interface {
	PlaceOrder(ctx context.Context, userID uuid.UUID, input *PlaceOrderInput) (*entity.Order, error)
	// GetOrder returns an order the actor owns; staff may read any order.
	GetOrder(ctx context.Context, actor Actor, orderID uuid.UUID) (*entity.Order, error)
	ListMyOrders(ctx context.Context, userID uuid.UUID, page, pageSize int) (*OrderPage, error)
	ListOrders(ctx context.Context, filter entity.OrderFilter) (*OrderPage, error)
	UpdateStatus(ctx context.Context, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error)
	PickupQR(ctx context.Context, actor Actor, orderID uuid.UUID) ([]byte, error)
	RedeemPickup(ctx context.Context, qrData string) (*entity.Order, error)
}
