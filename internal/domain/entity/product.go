package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is an item of the bakery catalog.
type Product struct {
	ID          uuid.UUID
	Name        string
	Description string
	Category    string
	Price       decimal.Decimal // Current unit price; orders snapshot it at placement.
	Stock       int
	ImageURL    string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CanSell reports whether quantity units can be sold right now.
func (p *Product) CanSell(quantity int) bool {
	return p.IsActive && quantity > 0 && p.Stock >= quantity
}

// ProductFilter narrows catalog listings.
type ProductFilter struct {
	Category       string
	Search         string
	IncludeHidden  bool
	Page, PageSize int
}

// Normalize clamps paging values.
func (f *ProductFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 {
		f.PageSize = 20
	}
	if f.PageSize > 100 {
		f.PageSize = 100
	}
}

// Offset returns the row offset for the current page.
func (f ProductFilter) Offset() int {
	return (f.Page - 1) * f.PageSize
}
