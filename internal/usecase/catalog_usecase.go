package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductInput carries the editable product fields.
type ProductInput struct {
	Name        string
	Description string
	Category    string
	Price       decimal.Decimal
	Stock       int
	ImageURL    string
	IsActive    bool
}

// CatalogUsecase manages the product catalog.
type CatalogUsecase interface {
	// ListProducts returns a page of products; hidden products only when filter.IncludeHidden.
	ListProducts(ctx context.Context, filter entity.ProductFilter) (*service.ProductPage, error)
	GetProduct(ctx context.Context, id uuid.UUID, includeHidden bool) (*entity.Product, error)
	CreateProduct(ctx context.Context, input *ProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, input *ProductInput) (*entity.Product, error)
	SetStock(ctx context.Context, id uuid.UUID, stock int) (*entity.Product, error)
	DeactivateProduct(ctx context.Context, id uuid.UUID) error
}
