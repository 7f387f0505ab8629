package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrDiscountNotFound is returned when no discount matches the code.
	ErrDiscountNotFound = errors.New("discount not found")
	// ErrDiscountCodeExists is returned when creating a discount with a taken code.
	ErrDiscountCodeExists = errors.New("discount code already exists")
	// ErrDiscountUsageExhausted is returned when the conditional usage increment matches no row.
	ErrDiscountUsageExhausted = errors.New("discount usage limit reached")
	// ErrDiscountAlreadyRedeemed is returned when the user already has a redemption row.
	ErrDiscountAlreadyRedeemed = errors.New("discount already redeemed by user")
)

// DiscountRepository persists discount codes and their redemptions.
type DiscountRepository interface {
	Create(ctx context.Context, discount *entity.Discount) error
	Update(ctx context.Context, discount *entity.Discount) error
	FindByCode(ctx context.Context, code string) (*entity.Discount, error)
	List(ctx context.Context) ([]*entity.Discount, error)

	// IncrementUsage bumps the usage count only while it is below the cap.
	IncrementUsage(ctx context.Context, id uuid.UUID) error

	// HasRedeemed reports whether the user already used the discount.
	HasRedeemed(ctx context.Context, userID, discountID uuid.UUID) (bool, error)

	// RecordRedemption stores the (user, discount) pair; duplicates return ErrDiscountAlreadyRedeemed.
	RecordRedemption(ctx context.Context, redemption *entity.UserDiscount) error

	// ReleaseRedemption deletes the redemption an order recorded and gives the use
	// back to the discount. Orders placed without a code are a no-op.
	ReleaseRedemption(ctx context.Context, orderID uuid.UUID) error
}
