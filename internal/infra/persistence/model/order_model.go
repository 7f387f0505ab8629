package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel mirrors the 'orders' table.
type OrderModel struct {
	ID              uuid.UUID        `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID        `gorm:"type:uuid;not null;index"`
	Subtotal        decimal.Decimal  `gorm:"type:numeric(14,2);not null"`
	Discount        decimal.Decimal  `gorm:"type:numeric(14,2);not null;default:0"`
	DiscountCode    string           `gorm:"type:varchar(50)"`
	Shipping        decimal.Decimal  `gorm:"type:numeric(14,2);not null;default:0"`
	Total           decimal.Decimal  `gorm:"type:numeric(14,2);not null"`
	PlatformFee     decimal.Decimal  `gorm:"type:numeric(14,2);not null"`
	AdminRevenue    decimal.Decimal  `gorm:"type:numeric(14,2);not null"`
	DeliveryAddress string           `gorm:"type:text;not null"`
	Status          string           `gorm:"type:varchar(20);not null;index"`
	Items           []OrderItemModel `gorm:"foreignKey:OrderID"`
	CreatedAt       time.Time        `gorm:"index"`
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table.
type OrderItemModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID     uuid.UUID       `gorm:"type:uuid;not null"`
	ProductName   string          `gorm:"type:varchar(200)"`
	Quantity      int             `gorm:"not null"`
	PriceSnapshot decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	LineTotal     decimal.Decimal `gorm:"type:numeric(14,2);not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}

// PaymentModel mirrors the 'payments' table. An order may have several attempts.
type PaymentModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	UserID          uuid.UUID       `gorm:"type:uuid;not null"`
	Reference       string          `gorm:"type:varchar(100);uniqueIndex;not null"`
	Amount          decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	FeeCollected    decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	AdminEarning    decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Status          string          `gorm:"type:varchar(20);not null;index"`
	ProviderEventID string          `gorm:"type:varchar(100)"`
	PaidAt          *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (PaymentModel) TableName() string {
	return "payments"
}
