package ports

import (
	"context"

	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"
)

// CartRepository defines the persistence contract for cart aggregates.
// Each customer owns at most one cart, so lookups go by customer identifier.
type CartRepository interface {
	// Add persists a new cart aggregate to storage.
	Add(ctx context.Context, aggregate *cart.Cart) error

	// Update persists changes to an existing cart aggregate,
	// replacing its stored lines with the current ones.
	Update(ctx context.Context, aggregate *cart.Cart) error

	// GetByCustomer retrieves the cart owned by the given customer.
	// Returns errs.ErrObjectNotFound if the customer has no cart yet.
	GetByCustomer(ctx context.Context, customerID kernel.UUID) (*cart.Cart, error)
}
