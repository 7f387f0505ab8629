package entity

import "github.com/shopspring/decimal"

var (
	hundred    = decimal.NewFromInt(100)
	moneyPlace = int32(2)
)

// RoundMoney rounds an amount to two decimal places.
func RoundMoney(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(moneyPlace)
}

// ToMinorUnits converts an amount in major units (naira) to minor units (kobo).
func ToMinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(hundred).Round(0).IntPart()
}

// FromMinorUnits converts minor units (kobo) to an amount in major units.
func FromMinorUnits(minor int64) decimal.Decimal {
	return decimal.New(minor, -2)
}

// Percent returns pct percent of amount rounded to money precision.
func Percent(amount, pct decimal.Decimal) decimal.Decimal {
	return RoundMoney(amount.Mul(pct).Div(hundred))
}
