package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the fulfilment state of an order.
type OrderStatus string

const (
	OrderPending        OrderStatus = "PENDING"
	OrderPaid           OrderStatus = "PAID"
	OrderProcessing     OrderStatus = "PROCESSING"
	OrderOutForDelivery OrderStatus = "OUT_FOR_DELIVERY"
	OrderDelivered      OrderStatus = "DELIVERED"
	OrderCancelled      OrderStatus = "CANCELLED"
)

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:        {OrderPaid, OrderCancelled},
	OrderPaid:           {OrderProcessing, OrderOutForDelivery, OrderDelivered, OrderCancelled},
	OrderProcessing:     {OrderOutForDelivery, OrderDelivered, OrderCancelled},
	OrderOutForDelivery: {OrderDelivered},
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderPending, OrderPaid, OrderProcessing, OrderOutForDelivery, OrderDelivered, OrderCancelled:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether an order in s may move to next.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// Order is a placed purchase. Money fields are fixed at placement time.
type Order struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Subtotal        decimal.Decimal
	Discount        decimal.Decimal
	DiscountCode    string
	Shipping        decimal.Decimal
	Total           decimal.Decimal
	PlatformFee     decimal.Decimal
	AdminRevenue    decimal.Decimal
	DeliveryAddress string
	Status          OrderStatus
	Items           []*OrderItem
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// OrderItem is a product line with the unit price captured at placement.
type OrderItem struct {
	ID            uuid.UUID
	OrderID       uuid.UUID
	ProductID     uuid.UUID
	ProductName   string
	Quantity      int
	PriceSnapshot decimal.Decimal
	LineTotal     decimal.Decimal
}

// OrderLine is the pricing input for one cart line.
type OrderLine struct {
	ProductID uuid.UUID
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
}

// Total returns the line price.
func (l OrderLine) Total() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// OrderTotals is the priced result of a checkout.
type OrderTotals struct {
	Subtotal decimal.Decimal
	Discount decimal.Decimal
	Shipping decimal.Decimal
	Total    decimal.Decimal
	Split    CommissionSplit
}

// SubtotalOf sums the line totals.
func SubtotalOf(lines []OrderLine) decimal.Decimal {
	subtotal := decimal.Zero
	for _, line := range lines {
		subtotal = subtotal.Add(line.Total())
	}

	return subtotal
}

// PriceOrder computes total = subtotal - discount + shipping and the commission split on total.
func PriceOrder(lines []OrderLine, discount, shipping, feePercentage decimal.Decimal) OrderTotals {
	subtotal := SubtotalOf(lines)
	if discount.GreaterThan(subtotal) {
		discount = subtotal
	}
	if discount.IsNegative() {
		discount = decimal.Zero
	}

	total := subtotal.Sub(discount).Add(shipping)

	return OrderTotals{
		Subtotal: subtotal,
		Discount: discount,
		Shipping: shipping,
		Total:    total,
		Split:    SplitCommission(total, feePercentage),
	}
}

// OrderFilter narrows order listings.
type OrderFilter struct {
	UserID         *uuid.UUID
	Status         OrderStatus
	Page, PageSize int
}

// Normalize clamps paging values.
func (f *OrderFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 {
		f.PageSize = 20
	}
	if f.PageSize > 100 {
		f.PageSize = 100
	}
}

// Offset returns the row offset for the current page.
func (f OrderFilter) Offset() int {
	return (f.Page - 1) * f.PageSize
}
