package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrInvalidPaymentTransition is returned when a payment is moved out of a final state.
var ErrInvalidPaymentTransition = errors.New("invalid payment status transition")

// PaymentStatus is the provider-side state of one payment attempt.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "PENDING"
	PaymentSuccess PaymentStatus = "SUCCESS"
	PaymentFailed  PaymentStatus = "FAILED"
)

// IsFinal reports whether no further transition is allowed.
func (s PaymentStatus) IsFinal() bool {
	return s == PaymentSuccess || s == PaymentFailed
}

// Payment is one attempt to pay an order. An order may have several attempts;
// each has its own unique Reference.
type Payment struct {
	ID              uuid.UUID
	OrderID         uuid.UUID
	UserID          uuid.UUID
	Reference       string
	Amount          decimal.Decimal
	FeeCollected    decimal.Decimal
	AdminEarning    decimal.Decimal
	Status          PaymentStatus
	ProviderEventID string
	PaidAt          *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewPendingPayment creates a payment attempt for an order using the given split.
func NewPendingPayment(order *Order, reference string, split CommissionSplit, now time.Time) *Payment {
	return &Payment{
		ID:           uuid.New(),
		OrderID:      order.ID,
		UserID:       order.UserID,
		Reference:    reference,
		Amount:       split.Total,
		FeeCollected: split.PlatformCommission,
		AdminEarning: split.AdminRevenue,
		Status:       PaymentPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Succeed moves a pending payment to SUCCESS.
func (p *Payment) Succeed(providerEventID string, at time.Time) error {
	if p.Status != PaymentPending {
		return ErrInvalidPaymentTransition
	}

	p.Status = PaymentSuccess
	p.ProviderEventID = providerEventID
	p.PaidAt = &at
	p.UpdatedAt = at

	return nil
}

// Fail moves a pending payment to FAILED.
func (p *Payment) Fail(providerEventID string, at time.Time) error {
	if p.Status != PaymentPending {
		return ErrInvalidPaymentTransition
	}

	p.Status = PaymentFailed
	p.ProviderEventID = providerEventID
	p.UpdatedAt = at

	return nil
}

// AmountInMinorUnits is the amount as the provider reports it.
func (p *Payment) AmountInMinorUnits() int64 {
	return ToMinorUnits(p.Amount)
}
