package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPaymentNotFound is returned when no payment matches the reference.
var ErrPaymentNotFound = errors.New("payment not found")

// PaymentRepository persists payment attempts.
type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	FindByReference(ctx context.Context, reference string) (*entity.Payment, error)
	ListByOrder(ctx context.Context, orderID uuid.UUID) ([]*entity.Payment, error)

	// CompareAndSetStatus applies the transition recorded on payment only if the stored
	// status is still from. It reports whether the row was changed.
	CompareAndSetStatus(ctx context.Context, payment *entity.Payment, from entity.PaymentStatus) (bool, error)
}
