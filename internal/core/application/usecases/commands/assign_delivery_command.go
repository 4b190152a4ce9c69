package commands

import (
	"errors"

	"marketplace/internal/pkg/guard"
)

var (
	ErrAssignDeliveryCommandIsNotConstructed = errors.New(
		"AssignDeliveryCommand must be created via NewAssignDeliveryCommand constructor",
	)
	ErrAgentNameIsRequired = errors.New("delivery agent name is required")
)

// AssignDeliveryCommand represents an admin request to hand an order to a
// delivery agent. The order moves to out for delivery and a pickup OTP is
// generated on first assignment.
type AssignDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderCode string
	agentName string

	guard guard.ConstructorGuard
}

// NewAssignDeliveryCommand creates a command to assign a delivery agent.
func NewAssignDeliveryCommand(orderCode string, agentName string) (AssignDeliveryCommand, error) {
	assignCommand := AssignDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		assignCommand.setOrderCode(orderCode),
		assignCommand.setAgentName(agentName),
	); err != nil {
		return AssignDeliveryCommand{}, err
	}

	return assignCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAssignDeliveryCommandIsNotConstructed)
}

// OrderCode returns the public code of the order to dispatch.
func (c AssignDeliveryCommand) OrderCode() string {
	return c.orderCode
}

// AgentName returns the delivery agent taking the order.
func (c AssignDeliveryCommand) AgentName() string {
	return c.agentName
}

func (c *AssignDeliveryCommand) setOrderCode(orderCode string) error {
	if orderCode == "" {
		return ErrOrderCodeIsRequired
	}

	c.orderCode = orderCode
	return nil
}

func (c *AssignDeliveryCommand) setAgentName(agentName string) error {
	if agentName == "" {
		return ErrAgentNameIsRequired
	}

	c.agentName = agentName
	return nil
}
