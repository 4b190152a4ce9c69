package commands

import (
	"context"

	"marketplace/internal/core/domain/model/cart"
)

// UpdateCartItemCommandHandler handles quantity changes on cart lines.
type UpdateCartItemCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewUpdateCartItemCommandHandler creates a handler for cart quantity updates.
func NewUpdateCartItemCommandHandler(uowFactory CartUoWFactory) UpdateCartItemCommandHandler {
	return UpdateCartItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the quantity update and returns the updated cart.
// Fails with an object not found error if the customer has no cart or the
// targeted line is not in it. Quantity zero or less removes the line.
func (h *UpdateCartItemCommandHandler) Handle(ctx context.Context, cmd UpdateCartItemCommand) (*cart.Cart, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cartRepo := uow.CartRepository()

	aggregate, err := cartRepo.GetByCustomer(ctx, cmd.CustomerID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.SetQuantity(cmd.ProductID(), cmd.VariantName(), cmd.Quantity()); err != nil {
		return nil, err
	}

	if err = cartRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
