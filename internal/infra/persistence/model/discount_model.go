package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DiscountModel mirrors the 'discounts' table.
type DiscountModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Code        string          `gorm:"type:varchar(50);uniqueIndex;not null"`
	Type        string          `gorm:"type:varchar(20);not null"`
	Value       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	MinPurchase decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	MaxUses     *int
	UsageCount  int `gorm:"not null;default:0"`
	ValidFrom   time.Time
	ValidTo     *time.Time
	IsActive    bool `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (DiscountModel) TableName() string {
	return "discounts"
}

// UserDiscountModel mirrors the 'user_discounts' table. The unique index allows one
// redemption per user and discount.
type UserDiscountModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_discount"`
	DiscountID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_discount"`
	OrderID    uuid.UUID `gorm:"type:uuid"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserDiscountModel) TableName() string {
	return "user_discounts"
}
