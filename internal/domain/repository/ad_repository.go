package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAdNotFound is returned when an ad does not exist or is not active.
var ErrAdNotFound = errors.New("ad not found")

// AdRepository persists ads and their impressions.
type AdRepository interface {
	Create(ctx context.Context, ad *entity.Ad) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Ad, error)
	List(ctx context.Context, activeOnly bool) ([]*entity.Ad, error)
	Deactivate(ctx context.Context, id uuid.UUID) error

	// RecordView increments the view counter and revenue of an active ad by its view value.
	RecordView(ctx context.Context, id uuid.UUID) (*entity.Ad, error)

	CreateImpression(ctx context.Context, impression *entity.AdImpression) error
}
