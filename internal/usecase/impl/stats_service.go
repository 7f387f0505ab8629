package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// maxStatsRange bounds GetStats to roughly a year of daily rows.
const maxStatsRange = 366 * 24 * time.Hour

type statsService struct {
	statsRepo  repository.StatsRepository
	ledgerRepo repository.LedgerRepository
	logger     *slog.Logger
	now        func() time.Time
}

// StatsServiceParams holds dependencies for StatsService, injected by Fx.
type StatsServiceParams struct {
	fx.In

	StatsRepo  repository.StatsRepository
	LedgerRepo repository.LedgerRepository
	Logger     *slog.Logger
}

// NewStatsService is the constructor for statsService.
func NewStatsService(params StatsServiceParams) usecase.StatsUsecase {
	return &statsService{
		statsRepo:  params.StatsRepo,
		ledgerRepo: params.LedgerRepo,
		logger:     params.Logger,
		now:        time.Now,
	}
}

func (srv *statsService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RecomputeDay rebuilds one day from source tables and overwrites its row, so
// running it twice gives the same result.
func (srv *statsService) RecomputeDay(ctx context.Context, day time.Time) (*entity.PlatformStats, error) {
	stats, err := srv.compute(ctx, day)
	if err != nil {
		return nil, err
	}

	if err := srv.statsRepo.Upsert(ctx, stats); err != nil {
		return nil, errors.Wrap(err, "failed to store platform stats")
	}

	srv.log(ctx).Info("Platform stats recomputed",
		slog.String("day", stats.Day.Format(time.DateOnly)),
		slog.String("sales", stats.TotalSales.StringFixed(2)),
		slog.String("commission", stats.TotalCommission.StringFixed(2)),
		slog.Int64("orders", stats.OrderCount))

	return stats, nil
}

func (srv *statsService) GetStats(ctx context.Context, from, to time.Time) ([]*entity.PlatformStats, error) {
	start, _ := entity.DayWindow(from)
	end, _ := entity.DayWindow(to)
	if end.Before(start) {
		return nil, domainerrors.ErrInvalidDateRange.WithDetails("from must not be after to")
	}
	if end.Sub(start) >= maxStatsRange {
		return nil, domainerrors.ErrInvalidDateRange.WithDetails("range cannot exceed 366 days")
	}

	rows, err := srv.statsRepo.ListBetween(ctx, start, end)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list platform stats")
	}

	return rows, nil
}

func (srv *statsService) Overview(ctx context.Context) (*entity.PlatformStats, error) {
	return srv.compute(ctx, srv.now())
}

func (srv *statsService) compute(ctx context.Context, day time.Time) (*entity.PlatformStats, error) {
	from, to := entity.DayWindow(day)

	sales, err := srv.ledgerRepo.SumByKind(ctx, entity.LedgerSale, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sum sales")
	}
	commission, err := srv.ledgerRepo.SumByKind(ctx, entity.LedgerCommission, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sum commission")
	}
	activity, err := srv.statsRepo.CountActivity(ctx, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count activity")
	}

	return &entity.PlatformStats{
		Day:             from,
		TotalCommission: commission,
		TotalSales:      sales,
		AdRevenue:       activity.AdRevenue,
		AdImpressions:   activity.AdImpressions,
		ActiveUsers:     activity.ActiveUsers,
		NewUsers:        activity.NewUsers,
		OrderCount:      activity.OrderCount,
		PaidOrderCount:  activity.PaidOrderCount,
		UpdatedAt:       srv.now().UTC(),
	}, nil
}
