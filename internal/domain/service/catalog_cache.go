package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// ProductPage is a cached catalog listing.
type ProductPage struct {
	Products []*entity.Product `json:"products"`
	Total    int64             `json:"total"`
}

// CatalogCache caches public catalog listings. Invalidate drops every cached listing.
type CatalogCache interface {
	GetProductPage(ctx context.Context, filter entity.ProductFilter) (*ProductPage, bool)
	SetProductPage(ctx context.Context, filter entity.ProductFilter, page *ProductPage)
	Invalidate(ctx context.Context)
}
