package commands

import (
	"context"
	"time"

	"marketplace/internal/core/ports"
)

// AssignDeliveryCommandHandler handles dispatching orders to delivery agents.
type AssignDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
	events     ports.OrderEventPublisher
}

// NewAssignDeliveryCommandHandler creates a handler for delivery assignment.
func NewAssignDeliveryCommandHandler(uowFactory OrderUoWFactory, events ports.OrderEventPublisher) AssignDeliveryCommandHandler {
	return AssignDeliveryCommandHandler{
		uowFactory: uowFactory,
		events:     events,
	}
}

// Handle processes the delivery assignment and returns the pickup OTP.
// The order is forced to out for delivery regardless of its current status,
// and the OTP survives agent reassignment.
func (h *AssignDeliveryCommandHandler) Handle(ctx context.Context, cmd AssignDeliveryCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.GetByCode(ctx, cmd.OrderCode())
	if err != nil {
		return "", err
	}

	if err = aggregate.AssignDelivery(cmd.AgentName(), time.Now().UTC()); err != nil {
		return "", err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	publishOrderStatusChanged(ctx, h.events, aggregate)
	return aggregate.OTP(), nil
}
