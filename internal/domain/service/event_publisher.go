package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// EventPublisher defines the interface for publishing domain events to a message queue.
// Events are published after the originating transaction commits; consumers must
// tolerate duplicates and missing events.
type EventPublisher interface {
	// Publish sends one event.
	Publish(ctx context.Context, event *entity.DomainEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
