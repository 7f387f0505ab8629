// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
)

// publishEvents sends events after the originating transaction has committed.
// Failures are logged and never returned to the caller.
func publishEvents(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, events ...*entity.DomainEvent) {
	requestID := deliverycontext.GetRequestIDFromContext(ctx)
	for _, event := range events {
		if event == nil {
			continue
		}
		event.RequestID = requestID
		if err := publisher.Publish(ctx, event); err != nil {
			logger.Warn("Failed to publish domain event",
				slog.String("eventType", string(event.Type)),
				slog.String("aggregateID", event.AggregateID.String()),
				slog.Any("error", err))
		}
	}
}

// pageOf clamps paging input the same way repository filters do.
func pageOf(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}

	return page, pageSize
}
