package impl

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type statsServiceFixtures struct {
	service    usecase.StatsUsecase
	statsRepo  *mockRepo.MockStatsRepository
	ledgerRepo *mockRepo.MockLedgerRepository
}

func createTestStatsService(t *testing.T) statsServiceFixtures {
	fx := statsServiceFixtures{
		statsRepo:  mockRepo.NewMockStatsRepository(t),
		ledgerRepo: mockRepo.NewMockLedgerRepository(t),
	}
	svc := NewStatsService(StatsServiceParams{
		StatsRepo:  fx.statsRepo,
		LedgerRepo: fx.ledgerRepo,
		Logger:     newDiscardLogger(),
	})
	svc.(*statsService).now = clock
	fx.service = svc

	return fx
}

func TestStatsService_RecomputeDay(t *testing.T) {
	fx := createTestStatsService(t)
	ctx := context.Background()
	dayStart := time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.AddDate(0, 0, 1)

	fx.ledgerRepo.EXPECT().SumByKind(ctx, entity.LedgerSale, dayStart, dayEnd).Return(dec("81000"), nil)
	fx.ledgerRepo.EXPECT().SumByKind(ctx, entity.LedgerCommission, dayStart, dayEnd).Return(dec("4050"), nil)
	fx.statsRepo.EXPECT().CountActivity(ctx, dayStart, dayEnd).Return(&repository.ActivityCounts{
		NewUsers:       2,
		ActiveUsers:    5,
		OrderCount:     4,
		PaidOrderCount: 3,
		AdImpressions:  10,
		AdRevenue:      dec("25"),
	}, nil)
	fx.statsRepo.EXPECT().Upsert(ctx, mock.MatchedBy(func(s *entity.PlatformStats) bool {
		return s.Day.Equal(dayStart) && s.TotalSales.Equal(dec("81000")) && s.TotalCommission.Equal(dec("4050"))
	})).Return(nil)

	// Any instant within the day selects the same row.
	stats, err := fx.service.RecomputeDay(ctx, time.Date(2026, 3, 13, 22, 45, 0, 0, time.UTC))

	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.PaidOrderCount)
	assert.Equal(t, int64(10), stats.AdImpressions)
	assert.True(t, stats.AdRevenue.Equal(dec("25")))
	assert.Equal(t, fixedNow, stats.UpdatedAt)
}

func TestStatsService_Overview_UsesToday(t *testing.T) {
	fx := createTestStatsService(t)
	ctx := context.Background()
	today, tomorrow := entity.DayWindow(fixedNow)

	fx.ledgerRepo.EXPECT().SumByKind(ctx, mock.Anything, today, tomorrow).Return(decimal.Zero, nil).Twice()
	fx.statsRepo.EXPECT().CountActivity(ctx, today, tomorrow).Return(&repository.ActivityCounts{AdRevenue: decimal.Zero}, nil)

	stats, err := fx.service.Overview(ctx)

	require.NoError(t, err)
	assert.Equal(t, today, stats.Day)
}

func TestStatsService_GetStats(t *testing.T) {
	march1 := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	march7 := time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC)

	t.Run("lists inclusive day range", func(t *testing.T) {
		fx := createTestStatsService(t)
		ctx := context.Background()
		rows := []*entity.PlatformStats{{Day: march1}, {Day: march7}}

		fx.statsRepo.EXPECT().ListBetween(ctx, march1, march7).Return(rows, nil)

		got, err := fx.service.GetStats(ctx, march1.Add(9*time.Hour), march7.Add(23*time.Hour))

		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("reversed range", func(t *testing.T) {
		fx := createTestStatsService(t)

		_, err := fx.service.GetStats(context.Background(), march7, march1)

		assert.ErrorIs(t, err, domainerrors.ErrInvalidDateRange)
	})

	t.Run("range over a year", func(t *testing.T) {
		fx := createTestStatsService(t)

		_, err := fx.service.GetStats(context.Background(), march1, march1.AddDate(1, 1, 0))

		assert.ErrorIs(t, err, domainerrors.ErrInvalidDateRange)
	})
}
