package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartItem is one product line in a user's cart. A user holds at most one
// line per product; adding again increases the quantity.
type CartItem struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	ProductID uuid.UUID
	Quantity  int
	Product   *Product // Loaded with the cart; nil when the product was removed.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// LineTotal is the line price at the product's current price.
func (c *CartItem) LineTotal() decimal.Decimal {
	if c.Product == nil {
		return decimal.Zero
	}

	return c.Product.Price.Mul(decimal.NewFromInt(int64(c.Quantity)))
}

// Cart is a read model of a user's cart.
type Cart struct {
	UserID   uuid.UUID
	Items    []*CartItem
	Subtotal decimal.Decimal
}

// NewCart builds the read model and computes the subtotal.
func NewCart(userID uuid.UUID, items []*CartItem) *Cart {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.LineTotal())
	}

	return &Cart{UserID: userID, Items: items, Subtotal: subtotal}
}
