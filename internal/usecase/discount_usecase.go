package usecase

import (
	"context"
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DiscountQuote is the result of checking a code against a subtotal.
type DiscountQuote struct {
	Code     string
	Type     entity.DiscountType
	Value    decimal.Decimal
	Discount decimal.Decimal
}

// CreateDiscountInput defines a new discount code.
type CreateDiscountInput struct {
	Code        string
	Type        entity.DiscountType
	Value       decimal.Decimal
	MinPurchase decimal.Decimal
	MaxUses     *int
	ValidFrom   *time.Time // nil means now.
	ValidTo     *time.Time
}

// UpdateDiscountInput changes the window, cap, threshold or active flag of a code.
type UpdateDiscountInput struct {
	Value       *decimal.Decimal
	MinPurchase *decimal.Decimal
	MaxUses     *int
	ClearMaxUse bool
	ValidFrom   *time.Time
	ValidTo     *time.Time
	IsActive    *bool
}

// DiscountUsecase evaluates and administers discount codes.
type DiscountUsecase interface {
	// ApplyDiscount previews a code for a user without redeeming it.
	ApplyDiscount(ctx context.Context, userID uuid.UUID, code string, subtotal decimal.Decimal) (*DiscountQuote, error)
	CreateDiscount(ctx context.Context, input *CreateDiscountInput) (*entity.Discount, error)
	ListDiscounts(ctx context.Context) ([]*entity.Discount, error)
	GetDiscount(ctx context.Context, code string) (*entity.Discount, error)
	UpdateDiscount(ctx context.Context, code string, input *UpdateDiscountInput) (*entity.Discount, error)
	DeactivateDiscount(ctx context.Context, code string) error
}
