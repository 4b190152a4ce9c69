package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing and retrieving orders by internal identifier,
// public code, and owning customer.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByCode retrieves an order aggregate by its public code, e.g. "ORDER1001".
	// Admin operations address orders by code rather than internal identifier.
	GetByCode(ctx context.Context, code string) (*order.Order, error)

	// GetByCustomer retrieves all orders placed by the given customer,
	// newest first.
	GetByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error)
}
