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

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestDiscountService(t *testing.T) (usecase.DiscountUsecase, *mockRepo.MockDiscountRepository) {
	discountRepo := mockRepo.NewMockDiscountRepository(t)
	svc := NewDiscountService(DiscountServiceParams{DiscountRepo: discountRepo, Logger: newDiscardLogger()})
	svc.(*discountService).now = clock

	return svc, discountRepo
}

func welcome10() *entity.Discount {
	return &entity.Discount{
		ID:          uuid.New(),
		Code:        "WELCOME10",
		Type:        entity.DiscountPercentage,
		Value:       dec("10"),
		MinPurchase: dec("5000"),
		ValidFrom:   fixedNow.AddDate(0, -1, 0),
		IsActive:    true,
	}
}

func TestDiscountService_ApplyDiscount(t *testing.T) {
	userID := uuid.New()

	t.Run("case-insensitive code", func(t *testing.T) {
		svc, discountRepo := createTestDiscountService(t)
		ctx := context.Background()
		discount := welcome10()

		discountRepo.EXPECT().FindByCode(ctx, "WELCOME10").Return(discount, nil)
		discountRepo.EXPECT().HasRedeemed(ctx, userID, discount.ID).Return(false, nil)

		quote, err := svc.ApplyDiscount(ctx, userID, " welcome10 ", dec("30000"))

		require.NoError(t, err)
		assert.Equal(t, "WELCOME10", quote.Code)
		assert.True(t, quote.Discount.Equal(dec("3000")))
	})

	t.Run("expired wins over other checks", func(t *testing.T) {
		svc, discountRepo := createTestDiscountService(t)
		ctx := context.Background()
		discount := welcome10()
		ended := fixedNow.Add(-time.Hour)
		discount.ValidTo = &ended

		discountRepo.EXPECT().FindByCode(ctx, "WELCOME10").Return(discount, nil)
		discountRepo.EXPECT().HasRedeemed(ctx, userID, discount.ID).Return(true, nil)

		_, err := svc.ApplyDiscount(ctx, userID, "WELCOME10", dec("30000"))

		assert.ErrorIs(t, err, domainerrors.ErrDiscountExpired)
	})

	t.Run("already used", func(t *testing.T) {
		svc, discountRepo := createTestDiscountService(t)
		ctx := context.Background()
		discount := welcome10()

		discountRepo.EXPECT().FindByCode(ctx, "WELCOME10").Return(discount, nil)
		discountRepo.EXPECT().HasRedeemed(ctx, userID, discount.ID).Return(true, nil)

		_, err := svc.ApplyDiscount(ctx, userID, "WELCOME10", dec("30000"))

		assert.ErrorIs(t, err, domainerrors.ErrDiscountAlreadyUsed)
	})

	t.Run("below minimum", func(t *testing.T) {
		svc, discountRepo := createTestDiscountService(t)
		ctx := context.Background()
		discount := welcome10()

		discountRepo.EXPECT().FindByCode(ctx, "WELCOME10").Return(discount, nil)
		discountRepo.EXPECT().HasRedeemed(ctx, userID, discount.ID).Return(false, nil)

		_, err := svc.ApplyDiscount(ctx, userID, "WELCOME10", dec("4999.99"))

		assert.ErrorIs(t, err, domainerrors.ErrDiscountMinPurchase)
	})

	t.Run("unknown code", func(t *testing.T) {
		svc, discountRepo := createTestDiscountService(t)
		ctx := context.Background()

		discountRepo.EXPECT().FindByCode(ctx, "NOPE").Return(nil, repository.ErrDiscountNotFound)

		_, err := svc.ApplyDiscount(ctx, userID, "nope", dec("30000"))

		assert.ErrorIs(t, err, domainerrors.ErrDiscountNotFound)
	})
}

func TestDiscountService_CreateDiscount(t *testing.T) {
	maxUses := 100

	t.Run("stores an upper-case code starting now", func(t *testing.T) {
		svc, discountRepo := createTestDiscountService(t)
		ctx := context.Background()

		discountRepo.EXPECT().Create(ctx, mock.MatchedBy(func(d *entity.Discount) bool {
			return d.Code == "SUMMER" && d.ValidFrom.Equal(fixedNow) && d.IsActive && *d.MaxUses == 100
		})).Return(nil)

		discount, err := svc.CreateDiscount(ctx, &usecase.CreateDiscountInput{
			Code:    "summer",
			Type:    entity.DiscountFixed,
			Value:   dec("2000"),
			MaxUses: &maxUses,
		})

		require.NoError(t, err)
		assert.Zero(t, discount.UsageCount)
	})

	t.Run("duplicate code", func(t *testing.T) {
		svc, discountRepo := createTestDiscountService(t)

		discountRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(repository.ErrDiscountCodeExists)

		_, err := svc.CreateDiscount(context.Background(), &usecase.CreateDiscountInput{
			Code: "SUMMER", Type: entity.DiscountFixed, Value: dec("2000"),
		})

		assert.ErrorIs(t, err, domainerrors.ErrDiscountCodeExists)
	})

	t.Run("percentage above 100", func(t *testing.T) {
		svc, _ := createTestDiscountService(t)

		_, err := svc.CreateDiscount(context.Background(), &usecase.CreateDiscountInput{
			Code: "HUGE", Type: entity.DiscountPercentage, Value: dec("120"),
		})

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestDiscountService_DeactivateDiscount(t *testing.T) {
	svc, discountRepo := createTestDiscountService(t)
	ctx := context.Background()
	discount := welcome10()

	discountRepo.EXPECT().FindByCode(ctx, "WELCOME10").Return(discount, nil)
	discountRepo.EXPECT().Update(ctx, mock.MatchedBy(func(d *entity.Discount) bool {
		return !d.IsActive
	})).Return(nil)

	require.NoError(t, svc.DeactivateDiscount(ctx, "welcome10"))
}
