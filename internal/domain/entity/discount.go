package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DiscountType selects how Value is interpreted.
type DiscountType string

const (
	// DiscountPercentage takes Value percent off the subtotal.
	DiscountPercentage DiscountType = "PERCENTAGE"
	// DiscountFixed takes a flat Value off the subtotal.
	DiscountFixed DiscountType = "FIXED"
)

// IsValid checks if the DiscountType is a valid value.
func (t DiscountType) IsValid() bool {
	return t == DiscountPercentage || t == DiscountFixed
}

// DiscountRejection explains why a code cannot be applied. The empty value means accepted.
type DiscountRejection string

const (
	DiscountAccepted            DiscountRejection = ""
	DiscountRejectedInactive    DiscountRejection = "inactive"
	DiscountRejectedNotStarted  DiscountRejection = "not_started"
	DiscountRejectedExpired     DiscountRejection = "expired"
	DiscountRejectedUsageLimit  DiscountRejection = "usage_limit"
	DiscountRejectedMinPurchase DiscountRejection = "min_purchase"
	DiscountRejectedAlreadyUsed DiscountRejection = "already_used"
)

// Discount is a promotion code.
type Discount struct {
	ID          uuid.UUID
	Code        string // Stored upper-case.
	Type        DiscountType
	Value       decimal.Decimal
	MinPurchase decimal.Decimal
	MaxUses     *int // nil means unlimited.
	UsageCount  int
	ValidFrom   time.Time
	ValidTo     *time.Time // nil means no expiry.
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NormalizeDiscountCode returns the canonical form of a user-typed code.
func NormalizeDiscountCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Evaluate checks the code against a subtotal and returns the discount amount.
// Checks run in a fixed order so the first failing rule is reported.
// The amount is always within [0, subtotal].
func (d *Discount) Evaluate(subtotal decimal.Decimal, now time.Time, alreadyUsed bool) (decimal.Decimal, DiscountRejection) {
	switch {
	case !d.IsActive:
		return decimal.Zero, DiscountRejectedInactive
	case now.Before(d.ValidFrom):
		return decimal.Zero, DiscountRejectedNotStarted
	case d.ValidTo != nil && now.After(*d.ValidTo):
		return decimal.Zero, DiscountRejectedExpired
	case d.MaxUses != nil && d.UsageCount >= *d.MaxUses:
		return decimal.Zero, DiscountRejectedUsageLimit
	case subtotal.LessThan(d.MinPurchase):
		return decimal.Zero, DiscountRejectedMinPurchase
	case alreadyUsed:
		return decimal.Zero, DiscountRejectedAlreadyUsed
	}

	return d.Amount(subtotal), DiscountAccepted
}

// Amount computes the discount for subtotal without checking eligibility.
func (d *Discount) Amount(subtotal decimal.Decimal) decimal.Decimal {
	var amount decimal.Decimal
	switch d.Type {
	case DiscountPercentage:
		amount = Percent(subtotal, d.Value)
	case DiscountFixed:
		amount = d.Value
	default:
		return decimal.Zero
	}

	if amount.IsNegative() {
		return decimal.Zero
	}
	if amount.GreaterThan(subtotal) {
		return subtotal
	}

	return amount
}

// UserDiscount records that a user redeemed a discount. One row per (user, discount).
type UserDiscount struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	DiscountID uuid.UUID
	OrderID    uuid.UUID
	CreatedAt  time.Time
}
