package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand represents an admin request to set an order's
// status directly. Accepts both canonical names ("OUT_FOR_DELIVERY") and
// dashboard slugs ("out_for_delivery", "preparing").
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderCode string
	status    order.Status

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a command to override an order status.
func NewChangeOrderStatusCommand(orderCode string, status string) (ChangeOrderStatusCommand, error) {
	statusCommand := ChangeOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		statusCommand.setOrderCode(orderCode),
		statusCommand.setStatus(status),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// OrderCode returns the public code of the order to change.
func (c ChangeOrderStatusCommand) OrderCode() string {
	return c.orderCode
}

// Status returns the parsed target status.
func (c ChangeOrderStatusCommand) Status() order.Status {
	return c.status
}

func (c *ChangeOrderStatusCommand) setOrderCode(orderCode string) error {
	if orderCode == "" {
		return ErrOrderCodeIsRequired
	}

	c.orderCode = orderCode
	return nil
}

func (c *ChangeOrderStatusCommand) setStatus(status string) error {
	parsed, err := order.StatusFromString(status)
	if err != nil {
		parsed, err = order.StatusFromSlug(status)
	}
	if err != nil {
		return err
	}

	c.status = parsed
	return nil
}
