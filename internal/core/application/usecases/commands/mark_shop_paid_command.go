package commands

import (
	"errors"

	"marketplace/internal/pkg/guard"
)

var ErrMarkShopPaidCommandIsNotConstructed = errors.New(
	"MarkShopPaidCommand must be created via NewMarkShopPaidCommand constructor",
)

// MarkShopPaidCommand represents an admin request to record that the shop
// has been settled for an order.
type MarkShopPaidCommand struct { //nolint:recvcheck //using for validation
	orderCode string

	guard guard.ConstructorGuard
}

// NewMarkShopPaidCommand creates a command to mark a shop settlement.
func NewMarkShopPaidCommand(orderCode string) (MarkShopPaidCommand, error) {
	paidCommand := MarkShopPaidCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := paidCommand.setOrderCode(orderCode); err != nil {
		return MarkShopPaidCommand{}, err
	}

	return paidCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkShopPaidCommand) Validate() error {
	return c.guard.Validate(ErrMarkShopPaidCommandIsNotConstructed)
}

// OrderCode returns the public code of the order to settle.
func (c MarkShopPaidCommand) OrderCode() string {
	return c.orderCode
}

func (c *MarkShopPaidCommand) setOrderCode(orderCode string) error {
	if orderCode == "" {
		return ErrOrderCodeIsRequired
	}

	c.orderCode = orderCode
	return nil
}
