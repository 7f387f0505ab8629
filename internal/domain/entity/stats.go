package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlatformStats is the daily platform roll-up. There is one row per UTC day.
type PlatformStats struct {
	Day             time.Time
	TotalCommission decimal.Decimal
	TotalSales      decimal.Decimal
	AdRevenue       decimal.Decimal
	AdImpressions   int64
	ActiveUsers     int64
	NewUsers        int64
	OrderCount      int64
	PaidOrderCount  int64
	UpdatedAt       time.Time
}

// DayWindow returns the UTC start of t's day and the start of the next day.
func DayWindow(t time.Time) (start, end time.Time) {
	utc := t.UTC()
	start = time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)

	return start, start.AddDate(0, 0, 1)
}
