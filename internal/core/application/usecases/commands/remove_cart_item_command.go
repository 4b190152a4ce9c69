package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrRemoveCartItemCommandIsNotConstructed = errors.New(
	"RemoveCartItemCommand must be created via NewRemoveCartItemCommand constructor",
)

// RemoveCartItemCommand represents a request to delete one line from a cart.
// Removal is idempotent: removing a line that is not present succeeds.
type RemoveCartItemCommand struct { //nolint:recvcheck //using for validation
	customerID  kernel.UUID
	productID   kernel.UUID
	variantName string

	guard guard.ConstructorGuard
}

// NewRemoveCartItemCommand creates a command to remove a cart line.
func NewRemoveCartItemCommand(
	customerID kernel.UUID,
	productID kernel.UUID,
	variantName string,
) (RemoveCartItemCommand, error) {
	cartCommand := RemoveCartItemCommand{
		variantName: variantName,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cartCommand.setCustomerID(customerID),
		cartCommand.setProductID(productID),
	); err != nil {
		return RemoveCartItemCommand{}, err
	}

	return cartCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveCartItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveCartItemCommandIsNotConstructed)
}

// CustomerID returns the identifier of the cart owner.
func (c RemoveCartItemCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// ProductID returns the catalog identifier of the line to remove.
func (c RemoveCartItemCommand) ProductID() kernel.UUID {
	return c.productID
}

// VariantName returns the variant identifying the line together with the product.
func (c RemoveCartItemCommand) VariantName() string {
	return c.variantName
}

func (c *RemoveCartItemCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *RemoveCartItemCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}
