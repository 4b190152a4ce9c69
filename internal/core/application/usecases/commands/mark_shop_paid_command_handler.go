package commands

import (
	"context"
)

// MarkShopPaidCommandHandler handles recording shop settlements.
type MarkShopPaidCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewMarkShopPaidCommandHandler creates a handler for shop settlement.
func NewMarkShopPaidCommandHandler(uowFactory OrderUoWFactory) MarkShopPaidCommandHandler {
	return MarkShopPaidCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the settlement. Marking an already settled order again
// is harmless, the flag only ever goes from false to true.
func (h *MarkShopPaidCommandHandler) Handle(ctx context.Context, cmd MarkShopPaidCommand) error {
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

	aggregate.MarkShopPaid()

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
