package ports

import (
	"context"

	"marketplace/internal/core/domain/model/order"
)

// OrderEventPublisher notifies external consumers about order lifecycle changes.
// Publishing is best effort: command handlers log failures and continue,
// the order itself is already committed when events go out.
type OrderEventPublisher interface {
	// PublishOrderCreated announces a freshly checked out order.
	PublishOrderCreated(ctx context.Context, aggregate *order.Order) error

	// PublishOrderStatusChanged announces a status transition on an order.
	PublishOrderStatusChanged(ctx context.Context, aggregate *order.Order) error
}
