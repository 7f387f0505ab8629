package postgres

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type statsRepository struct {
	db *gorm.DB
}

// NewStatsRepository is the constructor for statsRepository.
func NewStatsRepository(db *gorm.DB) repository.StatsRepository {
	return &statsRepository{db: db}
}

func (repo *statsRepository) CountActivity(ctx context.Context, from, to time.Time) (*repository.ActivityCounts, error) {
	from, to = from.UTC(), to.UTC()
	counts := &repository.ActivityCounts{}
	db := repo.db.WithContext(ctx)

	if err := db.Model(&model.UserModel{}).
		Where("created_at >= ? AND created_at < ?", from, to).
		Count(&counts.NewUsers).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count new users")
	}

	if err := db.Model(&model.OrderModel{}).
		Where("created_at >= ? AND created_at < ?", from, to).
		Count(&counts.OrderCount).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count orders")
	}

	if err := db.Model(&model.PaymentModel{}).
		Where("status = ? AND paid_at >= ? AND paid_at < ?", string(entity.PaymentSuccess), from, to).
		Distinct("order_id").
		Count(&counts.PaidOrderCount).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count paid orders")
	}

	// A user is active on a day when they placed an order or produced any tracked event.
	activeUsers := db.Raw(`
		SELECT COUNT(*) FROM (
			SELECT user_id FROM orders WHERE created_at >= ? AND created_at < ?
			UNION
			SELECT user_id FROM analytics_events WHERE user_id IS NOT NULL AND created_at >= ? AND created_at < ?
		) AS active`, from, to, from, to)
	if err := activeUsers.Scan(&counts.ActiveUsers).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count active users")
	}

	var impressions struct {
		Count int64
		Total decimal.Decimal
	}
	if err := db.Model(&model.AdImpressionModel{}).
		Select("COUNT(*) AS count, COALESCE(SUM(value), 0) AS total").
		Where("created_at >= ? AND created_at < ?", from, to).
		Scan(&impressions).Error; err != nil {
		return nil, errors.Wrap(err, "failed to sum ad impressions")
	}
	counts.AdImpressions = impressions.Count
	counts.AdRevenue = impressions.Total

	return counts, nil
}

// Upsert replaces the row for the day, so recomputing a day is idempotent.
func (repo *statsRepository) Upsert(ctx context.Context, stats *entity.PlatformStats) error {
	statsM := fromStatsDomain(stats)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "day"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"total_commission", "total_sales", "ad_revenue", "ad_impressions",
				"active_users", "new_users", "order_count", "paid_order_count", "updated_at",
			}),
		}).
		Create(statsM).Error
	if err != nil {
		return errors.Wrap(err, "failed to upsert platform stats")
	}

	return nil
}

func (repo *statsRepository) ListBetween(ctx context.Context, from, to time.Time) ([]*entity.PlatformStats, error) {
	var statsModels []model.PlatformStatsModel
	err := repo.db.WithContext(ctx).
		Where("day >= ? AND day <= ?", from.UTC(), to.UTC()).
		Order("day ASC").
		Find(&statsModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list platform stats")
	}

	result := make([]*entity.PlatformStats, 0, len(statsModels))
	for i := range statsModels {
		result = append(result, toStatsDomain(&statsModels[i]))
	}

	return result, nil
}

// --- Mapper Functions ---

func toStatsDomain(data *model.PlatformStatsModel) *entity.PlatformStats {
	return &entity.PlatformStats{
		Day:             data.Day.UTC(),
		TotalCommission: data.TotalCommission,
		TotalSales:      data.TotalSales,
		AdRevenue:       data.AdRevenue,
		AdImpressions:   data.AdImpressions,
		ActiveUsers:     data.ActiveUsers,
		NewUsers:        data.NewUsers,
		OrderCount:      data.OrderCount,
		PaidOrderCount:  data.PaidOrderCount,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromStatsDomain(data *entity.PlatformStats) *model.PlatformStatsModel {
	return &model.PlatformStatsModel{
		Day:             data.Day.UTC(),
		TotalCommission: data.TotalCommission,
		TotalSales:      data.TotalSales,
		AdRevenue:       data.AdRevenue,
		AdImpressions:   data.AdImpressions,
		ActiveUsers:     data.ActiveUsers,
		NewUsers:        data.NewUsers,
		OrderCount:      data.OrderCount,
		PaidOrderCount:  data.PaidOrderCount,
		UpdatedAt:       data.UpdatedAt,
	}
}
