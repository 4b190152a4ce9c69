package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrClearCartCommandIsNotConstructed = errors.New(
	"ClearCartCommand must be created via NewClearCartCommand constructor",
)

// ClearCartCommand represents a request to remove every line from a cart.
type ClearCartCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewClearCartCommand creates a command to empty a customer's cart.
func NewClearCartCommand(customerID kernel.UUID) (ClearCartCommand, error) {
	cartCommand := ClearCartCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cartCommand.setCustomerID(customerID); err != nil {
		return ClearCartCommand{}, err
	}

	return cartCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ClearCartCommand) Validate() error {
	return c.guard.Validate(ErrClearCartCommandIsNotConstructed)
}

// CustomerID returns the identifier of the cart owner.
func (c ClearCartCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c *ClearCartCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}
