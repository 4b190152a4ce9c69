package commands

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// AddToCartCommandHandler handles the business logic for adding catalog
// products to customer carts. The cart is created lazily on the first add,
// and repeated adds of the same product variant merge into one line.
//
// Example:
//
//	handler := NewAddToCartCommandHandler(uowFactory, catalog)
//	cmd, _ := NewAddToCartCommand(customerID, productID, 1, "")
//
//	updated, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("add to cart failed: %w", err)
//	}
type AddToCartCommandHandler struct {
	uowFactory CartUoWFactory
	catalog    ports.ProductCatalog
}

// NewAddToCartCommandHandler creates a handler for cart add operations.
// Requires a CartUoWFactory for transactional persistence and a ProductCatalog
// to resolve the product snapshot.
func NewAddToCartCommandHandler(uowFactory CartUoWFactory, catalog ports.ProductCatalog) AddToCartCommandHandler {
	return AddToCartCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
	}
}

// Handle processes the add to cart command and returns the updated cart.
// Resolves the product from the catalog so line name and price are snapshotted
// from trusted data, never from client input. Inactive or unknown products
// are rejected with an object not found error.
func (h *AddToCartCommandHandler) Handle(ctx context.Context, cmd AddToCartCommand) (*cart.Cart, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	product, err := h.catalog.GetProduct(ctx, cmd.ProductID())
	if err != nil {
		return nil, err
	}

	if !product.IsActive {
		return nil, errs.NewObjectNotFoundError("product", cmd.ProductID())
	}

	line, err := cart.NewLine(product.ID, product.Name, product.Price, cmd.Quantity(), cmd.VariantName())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cartRepo := uow.CartRepository()

	aggregate, err := cartRepo.GetByCustomer(ctx, cmd.CustomerID())
	isNewCart := false
	if err != nil {
		if !errors.Is(err, errs.ErrObjectNotFound) {
			return nil, err
		}

		aggregate, err = cart.NewCart(kernel.NewUUID(), cmd.CustomerID())
		if err != nil {
			return nil, err
		}
		isNewCart = true
	}

	if err = aggregate.AddLine(line); err != nil {
		return nil, err
	}

	if isNewCart {
		err = cartRepo.Add(ctx, aggregate)
	} else {
		err = cartRepo.Update(ctx, aggregate)
	}
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
