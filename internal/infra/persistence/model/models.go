// Package model holds the GORM table mappings.
package model

// All returns every table model in dependency order, for AutoMigrate.
func All() []any {
	return []any{
		&UserModel{},
		&AuthenticationModel{},
		&ProductModel{},
		&CartItemModel{},
		&DiscountModel{},
		&UserDiscountModel{},
		&OrderModel{},
		&OrderItemModel{},
		&PaymentModel{},
		&AdModel{},
		&AdImpressionModel{},
		&LedgerEntryModel{},
		&AnalyticsEventModel{},
		&PlatformStatsModel{},
	}
}
