package repository

import (
	"context"
	"time"

	"storefront/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// ActivityCounts are the non-ledger figures of a day.
type ActivityCounts struct {
	NewUsers       int64
	ActiveUsers    int64
	OrderCount     int64
	PaidOrderCount int64
	AdImpressions  int64
	AdRevenue      decimal.Decimal
}

// StatsRepository reads activity aggregates and stores the daily roll-up.
type StatsRepository interface {
	// CountActivity aggregates users, orders and ad impressions in [from, to).
	CountActivity(ctx context.Context, from, to time.Time) (*ActivityCounts, error)

	// Upsert writes the row for stats.Day, replacing an existing one.
	Upsert(ctx context.Context, stats *entity.PlatformStats) error

	// ListBetween returns stored rows with Day in [from, to] ordered by day.
	ListBetween(ctx context.Context, from, to time.Time) ([]*entity.PlatformStats, error)
}
