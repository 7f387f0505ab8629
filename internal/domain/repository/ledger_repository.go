package repository

import (
	"context"
	"errors"
	"time"

	"storefront/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// ErrLedgerEntryExists is returned when an entry with the same event key was already appended.
var ErrLedgerEntryExists = errors.New("ledger entry already exists")

// LedgerRepository is the append-only money log.
type LedgerRepository interface {
	Append(ctx context.Context, entries ...*entity.LedgerEntry) error

	// SumByKind totals entries of kind that occurred in [from, to).
	SumByKind(ctx context.Context, kind entity.LedgerKind, from, to time.Time) (decimal.Decimal, error)
}
