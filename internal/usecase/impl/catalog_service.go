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
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type catalogService struct {
	productRepo repository.ProductRepository
	cache       service.CatalogCache
	logger      *slog.Logger
	now         func() time.Time
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Cache       service.CatalogCache
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		productRepo: params.ProductRepo,
		cache:       params.Cache,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListProducts serves public listings from the cache; admin listings always hit the database.
func (srv *catalogService) ListProducts(ctx context.Context, filter entity.ProductFilter) (*service.ProductPage, error) {
	filter.Normalize()
	filter.Category = strings.TrimSpace(filter.Category)
	filter.Search = strings.TrimSpace(filter.Search)

	if !filter.IncludeHidden {
		if page, ok := srv.cache.GetProductPage(ctx, filter); ok {
			return page, nil
		}
	}

	products, total, err := srv.productRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}
	page := &service.ProductPage{Products: products, Total: total}

	if !filter.IncludeHidden {
		srv.cache.SetProductPage(ctx, filter, page)
	}

	return page, nil
}

func (srv *catalogService) GetProduct(ctx context.Context, id uuid.UUID, includeHidden bool) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}
	if !product.IsActive && !includeHidden {
		return nil, domainerrors.ErrProductNotFound
	}

	return product, nil
}

func (srv *catalogService) CreateProduct(ctx context.Context, input *usecase.ProductInput) (*entity.Product, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	now := srv.now().UTC()
	product := &entity.Product{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		Category:    strings.TrimSpace(input.Category),
		Price:       entity.RoundMoney(input.Price),
		Stock:       input.Stock,
		ImageURL:    input.ImageURL,
		IsActive:    input.IsActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}
	srv.cache.Invalidate(ctx)

	srv.log(ctx).Info("Product created", slog.String("productID", product.ID.String()), slog.String("name", product.Name))

	return product, nil
}

func (srv *catalogService) UpdateProduct(ctx context.Context, id uuid.UUID, input *usecase.ProductInput) (*entity.Product, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	product, err := srv.GetProduct(ctx, id, true)
	if err != nil {
		return nil, err
	}

	product.Name = strings.TrimSpace(input.Name)
	product.Description = input.Description
	product.Category = strings.TrimSpace(input.Category)
	product.Price = entity.RoundMoney(input.Price)
	product.Stock = input.Stock
	product.ImageURL = input.ImageURL
	product.IsActive = input.IsActive
	product.UpdatedAt = srv.now().UTC()

	if err := srv.productRepo.Update(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to update product")
	}
	srv.cache.Invalidate(ctx)

	return product, nil
}

func (srv *catalogService) SetStock(ctx context.Context, id uuid.UUID, stock int) (*entity.Product, error) {
	if stock < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("stock cannot be negative")
	}

	if err := srv.productRepo.SetStock(ctx, id, stock); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to set stock")
	}
	srv.cache.Invalidate(ctx)

	return srv.GetProduct(ctx, id, true)
}

// DeactivateProduct hides a product from the storefront. Existing orders keep their snapshot.
func (srv *catalogService) DeactivateProduct(ctx context.Context, id uuid.UUID) error {
	product, err := srv.GetProduct(ctx, id, true)
	if err != nil {
		return err
	}
	if !product.IsActive {
		return nil
	}

	product.IsActive = false
	product.UpdatedAt = srv.now().UTC()
	if err := srv.productRepo.Update(ctx, product); err != nil {
		return errors.Wrap(err, "failed to deactivate product")
	}
	srv.cache.Invalidate(ctx)

	srv.log(ctx).Info("Product deactivated", slog.String("productID", id.String()))

	return nil
}

func validateProductInput(input *usecase.ProductInput) error {
	switch {
	case strings.TrimSpace(input.Name) == "":
		return domainerrors.ErrValidationFailed.WithDetails("name is required")
	case !input.Price.IsPositive():
		return domainerrors.ErrValidationFailed.WithDetails("price must be greater than zero")
	case input.Stock < 0:
		return domainerrors.ErrValidationFailed.WithDetails("stock cannot be negative")
	}

	return nil
}
