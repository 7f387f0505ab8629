package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerEntryModel mirrors the append-only 'ledger_entries' table.
type LedgerEntryModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	EventKey   string          `gorm:"type:varchar(150);uniqueIndex;not null"`
	Kind       string          `gorm:"type:varchar(20);not null;index:idx_ledger_kind_time"`
	Amount     decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	PaymentID  *uuid.UUID      `gorm:"type:uuid"`
	OrderID    *uuid.UUID      `gorm:"type:uuid"`
	UserID     *uuid.UUID      `gorm:"type:uuid"`
	AdID       *uuid.UUID      `gorm:"type:uuid"`
	OccurredAt time.Time       `gorm:"not null;index:idx_ledger_kind_time"`
}

// TableName explicitly sets the table name for GORM.
func (LedgerEntryModel) TableName() string {
	return "ledger_entries"
}

// AnalyticsEventModel mirrors the 'analytics_events' table.
type AnalyticsEventModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID    *uuid.UUID     `gorm:"type:uuid;index"`
	Type      string         `gorm:"type:varchar(50);not null"`
	Payload   map[string]any `gorm:"serializer:json;type:text"`
	CreatedAt time.Time      `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (AnalyticsEventModel) TableName() string {
	return "analytics_events"
}

// PlatformStatsModel mirrors the 'platform_stats' table, one row per UTC day.
type PlatformStatsModel struct {
	Day             time.Time       `gorm:"type:date;primaryKey"`
	TotalCommission decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	TotalSales      decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	AdRevenue       decimal.Decimal `gorm:"type:numeric(14,4);not null;default:0"`
	AdImpressions   int64           `gorm:"not null;default:0"`
	ActiveUsers     int64           `gorm:"not null;default:0"`
	NewUsers        int64           `gorm:"not null;default:0"`
	OrderCount      int64           `gorm:"not null;default:0"`
	PaidOrderCount  int64           `gorm:"not null;default:0"`
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (PlatformStatsModel) TableName() string {
	return "platform_stats"
}
