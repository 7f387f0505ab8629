package entity

import (
	"time"

	"github.com/google/uuid"
)

// EventType names a domain event published after a state change commits.
type EventType string

const (
	EventOrderPlaced        EventType = "order.placed"
	EventOrderStatusChanged EventType = "order.status_changed"
	EventPaymentSucceeded   EventType = "payment.succeeded"
	EventPaymentFailed      EventType = "payment.failed"
	EventUserTierUpgraded   EventType = "user.tier_upgraded"
)

// DomainEvent is the envelope carried by the event publisher.
type DomainEvent struct {
	ID            uuid.UUID      `json:"id"`
	Type          EventType      `json:"type"`
	RequestID     string         `json:"request_id,omitempty"` // For distributed tracing
	AggregateID   uuid.UUID      `json:"aggregate_id"`
	Recipient     string         `json:"recipient,omitempty"`
	RecipientName string         `json:"recipient_name,omitempty"`
	OccurredAt    time.Time      `json:"occurred_at"`
	Data          map[string]any `json:"data,omitempty"`
}

// NewDomainEvent stamps a new event with an id and time.
func NewDomainEvent(eventType EventType, aggregateID uuid.UUID, recipient *User, data map[string]any) *DomainEvent {
	event := &DomainEvent{
		ID:          uuid.New(),
		Type:        eventType,
		AggregateID: aggregateID,
		OccurredAt:  time.Now().UTC(),
		Data:        data,
	}
	if recipient != nil {
		event.Recipient = recipient.Email
		event.RecipientName = recipient.Name
	}

	return event
}
