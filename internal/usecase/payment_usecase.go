package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// InitiatePaymentOutput is returned to the client before redirecting to checkout.
type InitiatePaymentOutput struct {
	AuthorizationURL string
	AccessCode       string
	Reference        string
	Split            entity.CommissionSplit
}

// PaymentUsecase starts split payments with the provider.
type PaymentUsecase interface {
	InitiatePayment(ctx context.Context, userID, orderID uuid.UUID) (*InitiatePaymentOutput, error)
	// GetPayment returns a payment the actor owns; staff may read any payment.
	GetPayment(ctx context.Context, actor Actor, reference string) (*entity.Payment, error)
}

// SettlementOutcome describes what a webhook delivery did.
type SettlementOutcome string

const (
	SettlementApplied   SettlementOutcome = "applied"
	SettlementDuplicate SettlementOutcome = "duplicate"
	SettlementFailed    SettlementOutcome = "failed"
	SettlementIgnored   SettlementOutcome = "ignored"
)

// SettlementUsecase applies verified provider webhooks exactly once.
type SettlementUsecase interface {
	HandleWebhook(ctx context.Context, body []byte, signature string) (SettlementOutcome, error)
}
