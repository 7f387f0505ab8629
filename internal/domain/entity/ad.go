package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Ad is a banner shown on the storefront. Each view earns ViewValue.
type Ad struct {
	ID           uuid.UUID
	Title        string
	ImageURL     string
	TargetURL    string
	ViewValue    decimal.Decimal
	Impressions  int64
	TotalRevenue decimal.Decimal
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// AdImpression is an append-only record of a single ad view.
type AdImpression struct {
	ID        uuid.UUID
	AdID      uuid.UUID
	UserID    *uuid.UUID // nil for anonymous visitors.
	Value     decimal.Decimal
	CreatedAt time.Time
}
