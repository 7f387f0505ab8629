package postgres

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository is the constructor for analyticsRepository.
func NewAnalyticsRepository(db *gorm.DB) repository.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (repo *analyticsRepository) Record(ctx context.Context, event *entity.AnalyticsEvent) error {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}

	eventM := &model.AnalyticsEventModel{
		ID:        event.ID,
		UserID:    event.UserID,
		Type:      string(event.Type),
		Payload:   event.Payload,
		CreatedAt: event.CreatedAt,
	}
	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		return errors.Wrap(err, "failed to record analytics event")
	}

	return nil
}
