package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrUpdateCartItemCommandIsNotConstructed = errors.New(
	"UpdateCartItemCommand must be created via NewUpdateCartItemCommand constructor",
)

// UpdateCartItemCommand represents a request to set the quantity of an
// existing cart line. A quantity of zero or less removes the line.
type UpdateCartItemCommand struct { //nolint:recvcheck //using for validation
	customerID  kernel.UUID
	productID   kernel.UUID
	quantity    int
	variantName string

	guard guard.ConstructorGuard
}

// NewUpdateCartItemCommand creates a command to change a cart line quantity.
// Unlike NewAddToCartCommand, non-positive quantities are allowed here and
// mean removal.
func NewUpdateCartItemCommand(
	customerID kernel.UUID,
	productID kernel.UUID,
	quantity int,
	variantName string,
) (UpdateCartItemCommand, error) {
	cartCommand := UpdateCartItemCommand{
		quantity:    quantity,
		variantName: variantName,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cartCommand.setCustomerID(customerID),
		cartCommand.setProductID(productID),
	); err != nil {
		return UpdateCartItemCommand{}, err
	}

	return cartCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCartItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCartItemCommandIsNotConstructed)
}

// CustomerID returns the identifier of the cart owner.
func (c UpdateCartItemCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// ProductID returns the catalog identifier of the line to change.
func (c UpdateCartItemCommand) ProductID() kernel.UUID {
	return c.productID
}

// Quantity returns the new quantity. Zero or less removes the line.
func (c UpdateCartItemCommand) Quantity() int {
	return c.quantity
}

// VariantName returns the variant identifying the line together with the product.
func (c UpdateCartItemCommand) VariantName() string {
	return c.variantName
}

func (c *UpdateCartItemCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *UpdateCartItemCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}
