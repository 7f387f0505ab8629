package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerKind classifies a money movement.
type LedgerKind string

const (
	LedgerSale       LedgerKind = "SALE"
	LedgerCommission LedgerKind = "COMMISSION"
)

// LedgerEntry is an append-only money record. EventKey is unique, so applying the
// same provider event twice cannot write a second entry.
type LedgerEntry struct {
	ID         uuid.UUID
	EventKey   string
	Kind       LedgerKind
	Amount     decimal.Decimal
	PaymentID  *uuid.UUID
	OrderID    *uuid.UUID
	UserID     *uuid.UUID
	AdID       *uuid.UUID
	OccurredAt time.Time
}

// SettlementLedgerEntries builds the sale and commission entries for a settled payment.
func SettlementLedgerEntries(payment *Payment, at time.Time) []*LedgerEntry {
	paymentID, orderID, userID := payment.ID, payment.OrderID, payment.UserID

	return []*LedgerEntry{
		{
			ID:         uuid.New(),
			EventKey:   payment.Reference + ":sale",
			Kind:       LedgerSale,
			Amount:     payment.Amount,
			PaymentID:  &paymentID,
			OrderID:    &orderID,
			UserID:     &userID,
			OccurredAt: at,
		},
		{
			ID:         uuid.New(),
			EventKey:   payment.Reference + ":commission",
			Kind:       LedgerCommission,
			Amount:     payment.FeeCollected,
			PaymentID:  &paymentID,
			OrderID:    &orderID,
			UserID:     &userID,
			OccurredAt: at,
		},
	}
}
