package paystack

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"strings"

	"storefront/internal/domain/service"

	"github.com/pkg/errors"
)

// Webhook event names handled by settlement.
const (
	EventChargeSuccess = service.WebhookChargeSuccess
	EventChargeFailed  = service.WebhookChargeFailed
)

var (
	ErrInvalidSignature = service.ErrInvalidWebhookSignature
	ErrInvalidPayload   = service.ErrInvalidWebhookPayload
)

type webhookEnvelope struct {
	Event string `json:"event"`
	Data  struct {
		ID        json.Number `json:"id"`
		Reference string      `json:"reference"`
		Amount    int64       `json:"amount"`
		Status    string      `json:"status"`
		Customer  struct {
			Email string `json:"email"`
		} `json:"customer"`
	} `json:"data"`
}

// VerifyWebhook checks hex(HMAC-SHA512(body, secret)) before decoding anything.
func (c *client) VerifyWebhook(body []byte, signature string) (*service.WebhookEvent, error) {
	if !validSignature(c.secretKey, body, signature) {
		return nil, ErrInvalidSignature
	}

	var envelope webhookEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, errors.Wrap(ErrInvalidPayload, err.Error())
	}
	if envelope.Event == "" {
		return nil, errors.Wrap(ErrInvalidPayload, "missing event")
	}

	return &service.WebhookEvent{
		Event:           envelope.Event,
		ProviderEventID: envelope.Data.ID.String(),
		Reference:       envelope.Data.Reference,
		AmountMinor:     envelope.Data.Amount,
		Status:          envelope.Data.Status,
		CustomerEmail:   envelope.Data.Customer.Email,
	}, nil
}

// Sign returns the signature Paystack would send for body.
func Sign(secret string, body []byte) string {
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write(body)

	return hex.EncodeToString(mac.Sum(nil))
}

func validSignature(secret string, body []byte, signature string) bool {
	got, err := hex.DecodeString(strings.TrimSpace(signature))
	if err != nil || len(got) != sha512.Size {
		return false
	}

	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write(body)

	return hmac.Equal(got, mac.Sum(nil))
}
