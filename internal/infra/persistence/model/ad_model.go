package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AdModel mirrors the 'ads' table.
type AdModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Title        string          `gorm:"type:varchar(200);not null"`
	ImageURL     string          `gorm:"type:varchar(500)"`
	TargetURL    string          `gorm:"type:varchar(500)"`
	ViewValue    decimal.Decimal `gorm:"type:numeric(12,4);not null"`
	Impressions  int64           `gorm:"not null;default:0"`
	TotalRevenue decimal.Decimal `gorm:"type:numeric(14,4);not null;default:0"`
	IsActive     bool            `gorm:"not null;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (AdModel) TableName() string {
	return "ads"
}

// AdImpressionModel mirrors the append-only 'ad_impressions' table.
type AdImpressionModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	AdID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	UserID    *uuid.UUID      `gorm:"type:uuid"`
	Value     decimal.Decimal `gorm:"type:numeric(12,4);not null"`
	CreatedAt time.Time       `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (AdImpressionModel) TableName() string {
	return "ad_impressions"
}
