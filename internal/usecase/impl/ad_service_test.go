package impl

import (
	"context"
	"testing"

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

type adServiceFixtures struct {
	service   usecase.AdUsecase
	txManager *mockRepo.MockTransactionManager
	adRepo    *mockRepo.MockAdRepository
}

func createTestAdService(t *testing.T) adServiceFixtures {
	fx := adServiceFixtures{
		txManager: mockRepo.NewMockTransactionManager(t),
		adRepo:    mockRepo.NewMockAdRepository(t),
	}
	svc := NewAdService(AdServiceParams{
		TxManager: fx.txManager,
		AdRepo:    fx.adRepo,
		Logger:    newDiscardLogger(),
	})
	svc.(*adService).now = clock
	fx.service = svc

	return fx
}

func TestAdService_CreateAd(t *testing.T) {
	tests := []struct {
		name    string
		input   *usecase.CreateAdInput
		wantErr error
	}{
		{
			name:  "active ad with view value",
			input: &usecase.CreateAdInput{Title: "  Easter hampers ", ImageURL: "https://cdn.test/e.png", ViewValue: dec("2.50")},
		},
		{
			name:    "blank title",
			input:   &usecase.CreateAdInput{Title: " ", ViewValue: dec("1")},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "negative view value",
			input:   &usecase.CreateAdInput{Title: "Promo", ViewValue: dec("-1")},
			wantErr: domainerrors.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAdService(t)
			ctx := context.Background()
			if tt.wantErr == nil {
				fx.adRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Ad")).Return(nil)
			}

			ad, err := fx.service.CreateAd(ctx, tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, ad)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Easter hampers", ad.Title)
			assert.True(t, ad.IsActive)
			assert.True(t, ad.TotalRevenue.IsZero())
			assert.Equal(t, fixedNow, ad.CreatedAt)
		})
	}
}

func TestAdService_RecordImpression(t *testing.T) {
	t.Run("stores an impression worth the view value", func(t *testing.T) {
		fx := createTestAdService(t)
		ctx := context.Background()
		adRepo := mockRepo.NewMockAdRepository(t)
		viewer := uuid.New()
		ad := &entity.Ad{ID: uuid.New(), ViewValue: dec("2.50"), Impressions: 41, TotalRevenue: dec("102.50"), IsActive: true}

		expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
			factory.EXPECT().NewAdRepository().Return(adRepo)
			adRepo.EXPECT().RecordView(ctx, ad.ID).Return(ad, nil)
			adRepo.EXPECT().CreateImpression(ctx, mock.MatchedBy(func(i *entity.AdImpression) bool {
				return i.AdID == ad.ID && *i.UserID == viewer && i.Value.Equal(dec("2.50")) && i.CreatedAt.Equal(fixedNow)
			})).Return(nil)
		})

		got, err := fx.service.RecordImpression(ctx, ad.ID, &viewer)

		require.NoError(t, err)
		assert.Equal(t, ad, got)
	})

	t.Run("inactive or missing ad", func(t *testing.T) {
		fx := createTestAdService(t)
		ctx := context.Background()
		adRepo := mockRepo.NewMockAdRepository(t)
		adID := uuid.New()

		expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
			factory.EXPECT().NewAdRepository().Return(adRepo)
			adRepo.EXPECT().RecordView(ctx, adID).Return(nil, repository.ErrAdNotFound)
		})

		got, err := fx.service.RecordImpression(ctx, adID, nil)

		assert.ErrorIs(t, err, domainerrors.ErrAdNotFound)
		assert.Nil(t, got)
	})
}

func TestAdService_DeactivateAd_NotFound(t *testing.T) {
	fx := createTestAdService(t)
	ctx := context.Background()
	adID := uuid.New()

	fx.adRepo.EXPECT().Deactivate(ctx, adID).Return(repository.ErrAdNotFound)

	assert.ErrorIs(t, fx.service.DeactivateAd(ctx, adID), domainerrors.ErrAdNotFound)
}
