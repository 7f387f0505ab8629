package entity

import "github.com/shopspring/decimal"

// CommissionSplit divides a payment between the platform and the bakery.
// PlatformCommission + AdminRevenue always equals Total.
type CommissionSplit struct {
	Total              decimal.Decimal `json:"total"`
	PlatformCommission decimal.Decimal `json:"platformCommission"`
	AdminRevenue       decimal.Decimal `json:"adminRevenue"`
}

// SplitCommission takes feePercentage percent of total as platform commission,
// rounded to two places, and gives the remainder to the bakery.
func SplitCommission(total, feePercentage decimal.Decimal) CommissionSplit {
	commission := Percent(total, feePercentage)

	return CommissionSplit{
		Total:              total,
		PlatformCommission: commission,
		AdminRevenue:       total.Sub(commission),
	}
}
