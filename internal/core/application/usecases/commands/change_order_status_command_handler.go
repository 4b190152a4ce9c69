package commands

import (
	"context"
	"time"

	"marketplace/internal/core/ports"
)

// ChangeOrderStatusCommandHandler handles direct status overrides from the
// admin dashboard.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	events     ports.OrderEventPublisher
}

// NewChangeOrderStatusCommandHandler creates a handler for status overrides.
func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory, events ports.OrderEventPublisher) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		events:     events,
	}
}

// Handle processes the override.
// Any status can be set from any status, including moving an order out of
// a terminal state. Delivered and cancelled timestamps are stamped when
// those statuses are set.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.GetByCode(ctx, cmd.OrderCode())
	if err != nil {
		return err
	}

	if err = aggregate.OverrideStatus(cmd.Status(), time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishOrderStatusChanged(ctx, h.events, aggregate)
	return nil
}
