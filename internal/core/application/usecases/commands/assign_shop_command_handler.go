package commands

import (
	"context"
	"time"

	"marketplace/internal/core/ports"
)

// AssignShopCommandHandler handles routing orders to shops.
type AssignShopCommandHandler struct {
	uowFactory OrderUoWFactory
	shops      ports.ShopCatalog
	events     ports.OrderEventPublisher
}

// NewAssignShopCommandHandler creates a handler for shop assignment.
// The shop catalog is consulted to reject assignments to unknown shops.
func NewAssignShopCommandHandler(
	uowFactory OrderUoWFactory,
	shops ports.ShopCatalog,
	events ports.OrderEventPublisher,
) AssignShopCommandHandler {
	return AssignShopCommandHandler{
		uowFactory: uowFactory,
		shops:      shops,
		events:     events,
	}
}

// Handle processes the shop assignment.
// A pending order moves to confirmed; the assignment timestamp is recorded
// on first assignment only. Re-assignment to another shop is allowed.
func (h *AssignShopCommandHandler) Handle(ctx context.Context, cmd AssignShopCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if _, err := h.shops.GetShop(ctx, cmd.ShopID()); err != nil {
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

	if err = aggregate.AssignShop(cmd.ShopID(), cmd.ShopPrice(), cmd.ShopMargin(), time.Now().UTC()); err != nil {
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
