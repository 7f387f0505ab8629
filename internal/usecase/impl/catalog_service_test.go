package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type catalogServiceFixtures struct {
	service     usecase.CatalogUsecase
	productRepo *mockRepo.MockProductRepository
	cache       *mockSvc.MockCatalogCache
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	cache := mockSvc.NewMockCatalogCache(t)

	svc := NewCatalogService(CatalogServiceParams{
		ProductRepo: productRepo,
		Cache:       cache,
		Logger:      newDiscardLogger(),
	})
	svc.(*catalogService).now = clock

	return catalogServiceFixtures{service: svc, productRepo: productRepo, cache: cache}
}

func TestCatalogService_ListProducts(t *testing.T) {
	cake := newProduct("Chocolate cake", "15000", 4)
	normalized := entity.ProductFilter{Category: "cakes", Page: 1, PageSize: 20}

	t.Run("cache hit skips the database", func(t *testing.T) {
		fx := createTestCatalogService(t)
		ctx := context.Background()
		cached := &service.ProductPage{Products: []*entity.Product{cake}, Total: 1}

		fx.cache.EXPECT().GetProductPage(ctx, normalized).Return(cached, true)

		page, err := fx.service.ListProducts(ctx, entity.ProductFilter{Category: " cakes "})

		require.NoError(t, err)
		assert.Same(t, cached, page)
	})

	t.Run("cache miss stores the page", func(t *testing.T) {
		fx := createTestCatalogService(t)
		ctx := context.Background()

		fx.cache.EXPECT().GetProductPage(ctx, normalized).Return(nil, false)
		fx.productRepo.EXPECT().List(ctx, normalized).Return([]*entity.Product{cake}, int64(1), nil)
		fx.cache.EXPECT().SetProductPage(ctx, normalized, mock.MatchedBy(func(page *service.ProductPage) bool {
			return page.Total == 1 && page.Products[0] == cake
		})).Return()

		page, err := fx.service.ListProducts(ctx, entity.ProductFilter{Category: "cakes"})

		require.NoError(t, err)
		assert.Equal(t, int64(1), page.Total)
	})

	t.Run("admin listing bypasses the cache", func(t *testing.T) {
		fx := createTestCatalogService(t)
		ctx := context.Background()
		filter := entity.ProductFilter{IncludeHidden: true, Page: 1, PageSize: 20}

		fx.productRepo.EXPECT().List(ctx, filter).Return(nil, int64(0), nil)

		page, err := fx.service.ListProducts(ctx, entity.ProductFilter{IncludeHidden: true})

		require.NoError(t, err)
		assert.Zero(t, page.Total)
	})
}

func TestCatalogService_GetProduct_HiddenIsNotFound(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	hidden := newProduct("Old bread", "500", 0)
	hidden.IsActive = false

	fx.productRepo.EXPECT().FindByID(ctx, hidden.ID).Return(hidden, nil).Twice()

	_, err := fx.service.GetProduct(ctx, hidden.ID, false)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)

	product, err := fx.service.GetProduct(ctx, hidden.ID, true)
	require.NoError(t, err)
	assert.Equal(t, hidden, product)
}

func TestCatalogService_CreateProduct(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.productRepo.EXPECT().Create(ctx, mock.MatchedBy(func(p *entity.Product) bool {
		return p.Name == "Red velvet" && p.Price.Equal(dec("12000.46")) && p.CreatedAt.Equal(fixedNow)
	})).Return(nil)
	fx.cache.EXPECT().Invalidate(ctx).Return()

	product, err := fx.service.CreateProduct(ctx, &usecase.ProductInput{
		Name:     " Red velvet ",
		Category: "cakes",
		Price:    dec("12000.455"),
		Stock:    3,
		IsActive: true,
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, product.ID)
}

func TestCatalogService_CreateProduct_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input usecase.ProductInput
	}{
		{name: "blank name", input: usecase.ProductInput{Name: " ", Price: dec("10")}},
		{name: "zero price", input: usecase.ProductInput{Name: "Bun", Price: dec("0")}},
		{name: "negative stock", input: usecase.ProductInput{Name: "Bun", Price: dec("10"), Stock: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCatalogService(t)

			_, err := fx.service.CreateProduct(context.Background(), &tt.input)

			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestCatalogService_SetStock(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	cake := newProduct("Chocolate cake", "15000", 9)

	fx.productRepo.EXPECT().SetStock(ctx, cake.ID, 9).Return(nil)
	fx.cache.EXPECT().Invalidate(ctx).Return()
	fx.productRepo.EXPECT().FindByID(ctx, cake.ID).Return(cake, nil)

	product, err := fx.service.SetStock(ctx, cake.ID, 9)

	require.NoError(t, err)
	assert.Equal(t, 9, product.Stock)

	fx.productRepo.EXPECT().SetStock(ctx, mock.Anything, 1).Return(repository.ErrProductNotFound)
	_, err = fx.service.SetStock(ctx, uuid.New(), 1)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}
