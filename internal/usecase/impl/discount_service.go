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

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

var rejectionErrors = map[entity.DiscountRejection]*domainerrors.BaseError{
	entity.DiscountRejectedInactive:    domainerrors.ErrDiscountInactive,
	entity.DiscountRejectedNotStarted:  domainerrors.ErrDiscountNotStarted,
	entity.DiscountRejectedExpired:     domainerrors.ErrDiscountExpired,
	entity.DiscountRejectedUsageLimit:  domainerrors.ErrDiscountUsageLimitReached,
	entity.DiscountRejectedMinPurchase: domainerrors.ErrDiscountMinPurchase,
	entity.DiscountRejectedAlreadyUsed: domainerrors.ErrDiscountAlreadyUsed,
}

type discountService struct {
	discountRepo repository.DiscountRepository
	logger       *slog.Logger
	now          func() time.Time
}

// DiscountServiceParams holds dependencies for DiscountService, injected by Fx.
type DiscountServiceParams struct {
	fx.In

	DiscountRepo repository.DiscountRepository
	Logger       *slog.Logger
}

// NewDiscountService is the constructor for discountService.
func NewDiscountService(params DiscountServiceParams) usecase.DiscountUsecase {
	return &discountService{
		discountRepo: params.DiscountRepo,
		logger:       params.Logger,
		now:          time.Now,
	}
}

func (srv *discountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *discountService) ApplyDiscount(ctx context.Context, userID uuid.UUID, code string, subtotal decimal.Decimal) (*usecase.DiscountQuote, error) {
	if subtotal.IsNegative() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("subtotal cannot be negative")
	}

	discount, amount, err := evaluateDiscount(ctx, srv.discountRepo, userID, code, subtotal, srv.now())
	if err != nil {
		return nil, err
	}

	return &usecase.DiscountQuote{
		Code:     discount.Code,
		Type:     discount.Type,
		Value:    discount.Value,
		Discount: amount,
	}, nil
}

func (srv *discountService) CreateDiscount(ctx context.Context, input *usecase.CreateDiscountInput) (*entity.Discount, error) {
	now := srv.now().UTC()
	discount := &entity.Discount{
		ID:          uuid.New(),
		Code:        entity.NormalizeDiscountCode(input.Code),
		Type:        input.Type,
		Value:       input.Value,
		MinPurchase: input.MinPurchase,
		MaxUses:     input.MaxUses,
		ValidFrom:   now,
		ValidTo:     input.ValidTo,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if input.ValidFrom != nil {
		discount.ValidFrom = input.ValidFrom.UTC()
	}
	if err := validateDiscount(discount); err != nil {
		return nil, err
	}

	if err := srv.discountRepo.Create(ctx, discount); err != nil {
		if errors.Is(err, repository.ErrDiscountCodeExists) {
			return nil, domainerrors.ErrDiscountCodeExists.WithDetails(discount.Code + " already exists")
		}

		return nil, errors.Wrap(err, "failed to create discount")
	}

	srv.log(ctx).Info("Discount created", slog.String("code", discount.Code), slog.String("type", string(discount.Type)))

	return discount, nil
}

func (srv *discountService) ListDiscounts(ctx context.Context) ([]*entity.Discount, error) {
	discounts, err := srv.discountRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list discounts")
	}

	return discounts, nil
}

func (srv *discountService) GetDiscount(ctx context.Context, code string) (*entity.Discount, error) {
	return findDiscount(ctx, srv.discountRepo, code)
}

func (srv *discountService) UpdateDiscount(ctx context.Context, code string, input *usecase.UpdateDiscountInput) (*entity.Discount, error) {
	discount, err := findDiscount(ctx, srv.discountRepo, code)
	if err != nil {
		return nil, err
	}

	if input.Value != nil {
		discount.Value = *input.Value
	}
	if input.MinPurchase != nil {
		discount.MinPurchase = *input.MinPurchase
	}
	switch {
	case input.ClearMaxUse:
		discount.MaxUses = nil
	case input.MaxUses != nil:
		discount.MaxUses = input.MaxUses
	}
	if input.ValidFrom != nil {
		discount.ValidFrom = input.ValidFrom.UTC()
	}
	if input.ValidTo != nil {
		validTo := input.ValidTo.UTC()
		discount.ValidTo = &validTo
	}
	if input.IsActive != nil {
		discount.IsActive = *input.IsActive
	}
	discount.UpdatedAt = srv.now().UTC()

	if err := validateDiscount(discount); err != nil {
		return nil, err
	}
	if err := srv.discountRepo.Update(ctx, discount); err != nil {
		return nil, errors.Wrap(err, "failed to update discount")
	}

	return discount, nil
}

func (srv *discountService) DeactivateDiscount(ctx context.Context, code string) error {
	inactive := false
	_, err := srv.UpdateDiscount(ctx, code, &usecase.UpdateDiscountInput{IsActive: &inactive})

	return err
}

// evaluateDiscount loads a code and checks it for userID. It performs no writes.
func evaluateDiscount(
	ctx context.Context,
	discountRepo repository.DiscountRepository,
	userID uuid.UUID,
	code string,
	subtotal decimal.Decimal,
	now time.Time,
) (*entity.Discount, decimal.Decimal, error) {
	discount, err := findDiscount(ctx, discountRepo, code)
	if err != nil {
		return nil, decimal.Zero, err
	}

	alreadyUsed, err := discountRepo.HasRedeemed(ctx, userID, discount.ID)
	if err != nil {
		return nil, decimal.Zero, errors.Wrap(err, "failed to check discount redemption")
	}

	amount, rejection := discount.Evaluate(subtotal, now, alreadyUsed)
	if rejection != entity.DiscountAccepted {
		return nil, decimal.Zero, rejectionErrors[rejection]
	}

	return discount, amount, nil
}

func findDiscount(ctx context.Context, discountRepo repository.DiscountRepository, code string) (*entity.Discount, error) {
	normalized := entity.NormalizeDiscountCode(code)
	if normalized == "" {
		return nil, domainerrors.ErrDiscountNotFound
	}

	discount, err := discountRepo.FindByCode(ctx, normalized)
	if err != nil {
		if errors.Is(err, repository.ErrDiscountNotFound) {
			return nil, domainerrors.ErrDiscountNotFound
		}

		return nil, errors.Wrap(err, "failed to find discount")
	}

	return discount, nil
}

func validateDiscount(discount *entity.Discount) error {
	switch {
	case discount.Code == "":
		return domainerrors.ErrValidationFailed.WithDetails("code is required")
	case !discount.Type.IsValid():
		return domainerrors.ErrValidationFailed.WithDetails("type must be PERCENTAGE or FIXED")
	case !discount.Value.IsPositive():
		return domainerrors.ErrValidationFailed.WithDetails("value must be greater than zero")
	case discount.Type == entity.DiscountPercentage && discount.Value.GreaterThan(decimal.NewFromInt(100)):
		return domainerrors.ErrValidationFailed.WithDetails("percentage cannot exceed 100")
	case discount.MinPurchase.IsNegative():
		return domainerrors.ErrValidationFailed.WithDetails("minPurchase cannot be negative")
	case discount.MaxUses != nil && *discount.MaxUses < 1:
		return domainerrors.ErrValidationFailed.WithDetails("maxUses must be at least 1")
	case discount.ValidTo != nil && !discount.ValidTo.After(discount.ValidFrom):
		return domainerrors.ErrValidationFailed.WithDetails("validTo must be after validFrom")
	}

	return nil
}
