package service

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

// ErrGatewayRejected wraps a refusal reported by the payment provider. The
// provider's message is available through GatewayError.
var ErrGatewayRejected = errors.New("payment gateway rejected the request")

// Webhook verification failures.
var (
	ErrInvalidWebhookSignature = errors.New("invalid webhook signature")
	ErrInvalidWebhookPayload   = errors.New("invalid webhook payload")
)

// Provider event names settlement acts on. Other events are acknowledged and ignored.
const (
	WebhookChargeSuccess = "charge.success"
	WebhookChargeFailed  = "charge.failed"
)

// GatewayError carries the provider's own message for a rejected request.
type GatewayError struct {
	StatusCode int
	Message    string
}

func (e *GatewayError) Error() string {
	return "payment gateway: " + e.Message
}

// Is lets callers match any GatewayError against ErrGatewayRejected.
func (e *GatewayError) Is(target error) bool {
	return target == ErrGatewayRejected
}

// InitializePaymentRequest describes a split payment to start with the provider.
type InitializePaymentRequest struct {
	Email       string
	Amount      decimal.Decimal // Major currency units.
	Commission  decimal.Decimal // Platform share, charged on top of the bakery subaccount settlement.
	Reference   string
	CallbackURL string
	Metadata    map[string]string
}

// InitializePaymentResult is what the client needs to continue to the hosted checkout.
type InitializePaymentResult struct {
	AuthorizationURL string
	AccessCode       string
	Reference        string
}

// WebhookEvent is a provider event delivered to the settlement webhook.
type WebhookEvent struct {
	Event           string
	ProviderEventID string
	Reference       string
	AmountMinor     int64
	Status          string
	CustomerEmail   string
}

// PaymentGateway abstracts the payment provider.
type PaymentGateway interface {
	// InitializePayment starts a transaction and returns the hosted checkout URL.
	InitializePayment(ctx context.Context, req *InitializePaymentRequest) (*InitializePaymentResult, error)

	// VerifyWebhook checks the signature of a raw webhook body and decodes it.
	VerifyWebhook(body []byte, signature string) (*WebhookEvent, error)
}
