package postgres

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type adRepository struct {
	db *gorm.DB
}

// NewAdRepository is the constructor for adRepository.
func NewAdRepository(db *gorm.DB) repository.AdRepository {
	return &adRepository{db: db}
}

func (repo *adRepository) Create(ctx context.Context, ad *entity.Ad) error {
	if ad.ID == uuid.Nil {
		ad.ID = uuid.New()
	}
	adM := fromAdDomain(ad)

	if err := repo.db.WithContext(ctx).Create(adM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create ad")
	}

	ad.CreatedAt = adM.CreatedAt
	ad.UpdatedAt = adM.UpdatedAt

	return nil
}

func (repo *adRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Ad, error) {
	var adM model.AdModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&adM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAdNotFound
		}

		return nil, errors.Wrap(err, "failed to find ad")
	}

	return toAdDomain(&adM), nil
}

func (repo *adRepository) List(ctx context.Context, activeOnly bool) ([]*entity.Ad, error) {
	query := repo.db.WithContext(ctx).Order("created_at DESC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var adModels []model.AdModel
	if err := query.Find(&adModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list ads")
	}

	ads := make([]*entity.Ad, 0, len(adModels))
	for i := range adModels {
		ads = append(ads, toAdDomain(&adModels[i]))
	}

	return ads, nil
}

func (repo *adRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AdModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"is_active": false, "updated_at": time.Now().UTC()})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to deactivate ad")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAdNotFound
	}

	return nil
}

// RecordView bumps the counters in place and returns the updated ad.
func (repo *adRepository) RecordView(ctx context.Context, id uuid.UUID) (*entity.Ad, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.AdModel{}).
		Where("id = ? AND is_active = ?", id, true).
		Updates(map[string]any{
			"impressions":   gorm.Expr("impressions + 1"),
			"total_revenue": gorm.Expr("total_revenue + view_value"),
			"updated_at":    time.Now().UTC(),
		})
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to record ad view")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrAdNotFound
	}

	return repo.FindByID(ctx, id)
}

func (repo *adRepository) CreateImpression(ctx context.Context, impression *entity.AdImpression) error {
	if impression.ID == uuid.Nil {
		impression.ID = uuid.New()
	}

	impressionM := &model.AdImpressionModel{
		ID:        impression.ID,
		AdID:      impression.AdID,
		UserID:    impression.UserID,
		Value:     impression.Value,
		CreatedAt: impression.CreatedAt,
	}
	if err := repo.db.WithContext(ctx).Create(impressionM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create ad impression")
	}

	impression.CreatedAt = impressionM.CreatedAt

	return nil
}

// --- Mapper Functions ---

func toAdDomain(data *model.AdModel) *entity.Ad {
	if data == nil {
		return nil
	}

	return &entity.Ad{
		ID:           data.ID,
		Title:        data.Title,
		ImageURL:     data.ImageURL,
		TargetURL:    data.TargetURL,
		ViewValue:    data.ViewValue,
		Impressions:  data.Impressions,
		TotalRevenue: data.TotalRevenue,
		IsActive:     data.IsActive,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromAdDomain(data *entity.Ad) *model.AdModel {
	if data == nil {
		return nil
	}

	return &model.AdModel{
		ID:           data.ID,
		Title:        data.Title,
		ImageURL:     data.ImageURL,
		TargetURL:    data.TargetURL,
		ViewValue:    data.ViewValue,
		Impressions:  data.Impressions,
		TotalRevenue: data.TotalRevenue,
		IsActive:     data.IsActive,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
