package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrAddToCartCommandIsNotConstructed = errors.New(
		"AddToCartCommand must be created via NewAddToCartCommand constructor",
	)
	ErrQuantityIsInvalid = errors.New("quantity must be greater than 0")
)

// AddToCartCommand represents a request to add a product to a customer's cart.
// The product is identified by its catalog ID plus an optional variant name;
// price and product name are resolved from the catalog by the handler.
//
// Example:
//
//	cmd, err := NewAddToCartCommand(customerID, productID, 2, "500g")
//	if err != nil {
//	    return fmt.Errorf("invalid cart request: %w", err)
//	}
//
//	handler := NewAddToCartCommandHandler(uowFactory, catalog)
//	updated, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to add to cart: %w", err)
//	}
type AddToCartCommand struct { //nolint:recvcheck //using for validation
	customerID  kernel.UUID
	productID   kernel.UUID
	quantity    int
	variantName string

	guard guard.ConstructorGuard
}

// NewAddToCartCommand creates a command to add a product to a cart.
// Validates that both identifiers are valid and quantity is positive.
func NewAddToCartCommand(
	customerID kernel.UUID,
	productID kernel.UUID,
	quantity int,
	variantName string,
) (AddToCartCommand, error) {
	cartCommand := AddToCartCommand{
		variantName: variantName,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cartCommand.setCustomerID(customerID),
		cartCommand.setProductID(productID),
		cartCommand.setQuantity(quantity),
	); err != nil {
		return AddToCartCommand{}, err
	}

	return cartCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AddToCartCommand) Validate() error {
	return c.guard.Validate(ErrAddToCartCommandIsNotConstructed)
}

// CustomerID returns the identifier of the cart owner.
func (c AddToCartCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// ProductID returns the catalog identifier of the product to add.
func (c AddToCartCommand) ProductID() kernel.UUID {
	return c.productID
}

// Quantity returns how many units to add.
func (c AddToCartCommand) Quantity() int {
	return c.quantity
}

// VariantName returns the optional product variant, e.g. "500g".
func (c AddToCartCommand) VariantName() string {
	return c.variantName
}

func (c *AddToCartCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *AddToCartCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *AddToCartCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}
