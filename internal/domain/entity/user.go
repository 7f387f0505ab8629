// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// User is an account on the storefront. Customers, bakery admins and platform
// owners share this type and are told apart by Role.
type User struct {
	ID         uuid.UUID       // The Global Unique Identifier (GUID) for the user.
	Email      string          // Login identifier and contact address for order emails.
	Name       string          // The user's display name.
	Phone      string          // Optional contact number used for deliveries.
	Role       Role            // Access tier.
	TotalSpent decimal.Decimal // Sum of all settled payments.
	IsRegular  bool            // Loyalty flag, set once TotalSpent reaches the platform threshold.
	CreatedAt  time.Time       // Timestamp of when this user account was created.
	UpdatedAt  time.Time       // Timestamp of the last modification to this user's data.
}
