package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateAdInput defines a new advertisement.
type CreateAdInput struct {
	Title     string
	ImageURL  string
	TargetURL string
	ViewValue decimal.Decimal
}

// AdUsecase manages ads and counts their impressions.
type AdUsecase interface {
	CreateAd(ctx context.Context, input *CreateAdInput) (*entity.Ad, error)
	ListAds(ctx context.Context, activeOnly bool) ([]*entity.Ad, error)
	DeactivateAd(ctx context.Context, id uuid.UUID) error
	// RecordImpression counts one view; userID is nil for anonymous visitors.
	RecordImpression(ctx context.Context, adID uuid.UUID, userID *uuid.UUID) (*entity.Ad, error)
}
