package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// CancelOrderCommandHandler handles customer-initiated order cancellation.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	events     ports.OrderEventPublisher
}

// NewCancelOrderCommandHandler creates a handler for customer cancellations.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory, events ports.OrderEventPublisher) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		events:     events,
	}
}

// Handle processes the cancellation and returns the cancelled order.
// Orders belonging to a different customer are reported as not found rather
// than forbidden, so order identifiers cannot be probed. The cancellation
// window itself is enforced by the order aggregate.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if !aggregate.BelongsTo(cmd.CustomerID()) {
		return nil, errs.NewObjectNotFoundError("order", cmd.OrderID())
	}

	if err = aggregate.CancelByCustomer(time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	publishOrderStatusChanged(ctx, h.events, aggregate)
	return aggregate, nil
}
