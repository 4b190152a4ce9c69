package commands

import (
	"context"
	"log/slog"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
)

// Event publishing is best effort: the order is already committed when
// events go out, so failures are logged and never fail the command.

func publishOrderCreated(ctx context.Context, events ports.OrderEventPublisher, aggregate *order.Order) {
	if events == nil {
		return
	}

	if err := events.PublishOrderCreated(ctx, aggregate); err != nil {
		slog.Warn("failed to publish order created event",
			slog.String("orderCode", aggregate.Code()),
			slog.Any("error", err))
	}
}

func publishOrderStatusChanged(ctx context.Context, events ports.OrderEventPublisher, aggregate *order.Order) {
	if events == nil {
		return
	}

	if err := events.PublishOrderStatusChanged(ctx, aggregate); err != nil {
		slog.Warn("failed to publish order status changed event",
			slog.String("orderCode", aggregate.Code()),
			slog.String("status", aggregate.Status().String()),
			slog.Any("error", err))
	}
}
