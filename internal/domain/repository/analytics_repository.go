package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// AnalyticsRepository stores user activity events.
type AnalyticsRepository interface {
	Record(ctx context.Context, event *entity.AnalyticsEvent) error
}
