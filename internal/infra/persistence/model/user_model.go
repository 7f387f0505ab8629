package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UserModel mirrors the 'users' table. IDs are generated by the application.
type UserModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Email      string          `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name       string          `gorm:"type:varchar(100)"`
	Phone      string          `gorm:"type:varchar(32)"`
	Role       string          `gorm:"type:varchar(20);not null;default:client;index"`
	TotalSpent decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	IsRegular  bool            `gorm:"not null;default:false"`
	CreatedAt  time.Time       `gorm:"index"`
	UpdatedAt  time.Time

	Authentications []AuthenticationModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
