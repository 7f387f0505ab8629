package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

type adService struct {
	txManager repository.TransactionManager
	adRepo    repository.AdRepository
	logger    *slog.Logger
	now       func() time.Time
}

// AdServiceParams holds dependencies for AdService, injected by Fx.
type AdServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	AdRepo    repository.AdRepository
	Logger    *slog.Logger
}

// NewAdService is the constructor for adService.
func NewAdService(params AdServiceParams) usecase.AdUsecase {
	return &adService{
		txManager: params.TxManager,
		adRepo:    params.AdRepo,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *adService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *adService) CreateAd(ctx context.Context, input *usecase.CreateAdInput) (*entity.Ad, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("title is required")
	}
	if input.ViewValue.IsNegative() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("viewValue cannot be negative")
	}

	now := srv.now().UTC()
	ad := &entity.Ad{
		ID:           uuid.New(),
		Title:        strings.TrimSpace(input.Title),
		ImageURL:     input.ImageURL,
		TargetURL:    input.TargetURL,
		ViewValue:    input.ViewValue,
		TotalRevenue: decimal.Zero,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := srv.adRepo.Create(ctx, ad); err != nil {
		return nil, errors.Wrap(err, "failed to create ad")
	}

	srv.log(ctx).Info("Ad created", slog.String("adID", ad.ID.String()), slog.String("viewValue", ad.ViewValue.String()))

	return ad, nil
}

func (srv *adService) ListAds(ctx context.Context, activeOnly bool) ([]*entity.Ad, error) {
	ads, err := srv.adRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list ads")
	}

	return ads, nil
}

func (srv *adService) DeactivateAd(ctx context.Context, id uuid.UUID) error {
	if err := srv.adRepo.Deactivate(ctx, id); err != nil {
		if errors.Is(err, repository.ErrAdNotFound) {
			return domainerrors.ErrAdNotFound
		}

		return errors.Wrap(err, "failed to deactivate ad")
	}

	return nil
}

// RecordImpression bumps the ad counters and appends the impression row in one transaction.
func (srv *adService) RecordImpression(ctx context.Context, adID uuid.UUID, userID *uuid.UUID) (*entity.Ad, error) {
	var ad *entity.Ad
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		adRepo := repoFactory.NewAdRepository()

		var err error
		ad, err = adRepo.RecordView(ctx, adID)
		if err != nil {
			if errors.Is(err, repository.ErrAdNotFound) {
				return domainerrors.ErrAdNotFound
			}

			return errors.Wrap(err, "failed to record ad view")
		}

		impression := &entity.AdImpression{
			ID:        uuid.New(),
			AdID:      adID,
			UserID:    userID,
			Value:     ad.ViewValue,
			CreatedAt: srv.now().UTC(),
		}
		if err := adRepo.CreateImpression(ctx, impression); err != nil {
			return errors.Wrap(err, "failed to store impression")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return ad, nil
}
