package entity

import (
	"time"

	"github.com/google/uuid"
)

// AnalyticsEventType names a tracked user action.
type AnalyticsEventType string

const (
	AnalyticsOrderPlaced  AnalyticsEventType = "order_placed"
	AnalyticsPaymentMade  AnalyticsEventType = "payment_succeeded"
	AnalyticsAdImpression AnalyticsEventType = "ad_impression"
	AnalyticsUserSignedUp AnalyticsEventType = "user_signed_up"
)

// AnalyticsEvent is an append-only activity record used for active-user counts.
type AnalyticsEvent struct {
	ID        uuid.UUID
	UserID    *uuid.UUID
	Type      AnalyticsEventType
	Payload   map[string]any
	CreatedAt time.Time
}
