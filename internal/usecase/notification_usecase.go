package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// NotificationUsecase turns published domain events into customer email.
type NotificationUsecase interface {
	// HandleEvent returns nil for events that need no email.
	HandleEvent(ctx context.Context, event *entity.DomainEvent) error
}
