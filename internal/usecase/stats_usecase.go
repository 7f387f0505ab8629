package usecase

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
)

// StatsUsecase owns the platform_stats table; nothing else writes it.
type StatsUsecase interface {
	// RecomputeDay rebuilds the UTC day containing day from the ledger and activity tables.
	RecomputeDay(ctx context.Context, day time.Time) (*entity.PlatformStats, error)
	GetStats(ctx context.Context, from, to time.Time) ([]*entity.PlatformStats, error)
	// Overview recomputes today without persisting it.
	Overview(ctx context.Context) (*entity.PlatformStats, error)
}
