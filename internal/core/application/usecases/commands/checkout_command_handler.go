package commands

import (
	"context"
	"errors"
	"time"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// CheckoutCommandHandler handles the business logic for placing orders.
// Resolves products from the catalog, prices the order, allocates a public
// order code, persists the order, and clears the authenticated customer's
// cart in the same transaction.
//
// Example:
//
//	handler := NewCheckoutCommandHandler(uowFactory, catalog, sequence, pricing, events)
//	cmd, _ := NewCheckoutCommand(kernel.NewUUID(), nil,
//	    "Ravi", "9876543210", "5 Brigade Road", "", nil, "COD", "", nil, items)
//
//	code, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("checkout failed: %w", err)
//	}
type CheckoutCommandHandler struct {
	uowFactory UoWFactory
	catalog    ports.ProductCatalog
	sequence   ports.OrderSequence
	pricing    services.PricingService
	events     ports.OrderEventPublisher
}

// NewCheckoutCommandHandler creates a handler for checkout operations.
// The event publisher may be nil when no broker is configured.
func NewCheckoutCommandHandler(
	uowFactory UoWFactory,
	catalog ports.ProductCatalog,
	sequence ports.OrderSequence,
	pricing services.PricingService,
	events ports.OrderEventPublisher,
) CheckoutCommandHandler {
	return CheckoutCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		sequence:   sequence,
		pricing:    pricing,
		events:     events,
	}
}

// Handle processes the checkout command.
// Line prices come from the catalog, totals from the pricing service, and
// the public code from the order sequence, so concurrent checkouts never
// collide on a code. The order created event goes out after commit.
func (h *CheckoutCommandHandler) Handle(ctx context.Context, cmd CheckoutCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	lines, err := h.resolveLines(ctx, cmd.Items())
	if err != nil {
		return "", err
	}

	totals := h.pricing.CalcTotals(lines)

	contact, err := order.NewContact(
		cmd.CustomerID(),
		cmd.CustomerName(),
		cmd.Phone(),
		cmd.Address(),
		cmd.Notes(),
		cmd.Location(),
	)
	if err != nil {
		return "", err
	}

	code, err := h.sequence.NextCode(ctx)
	if err != nil {
		return "", err
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(),
		code,
		contact,
		lines,
		totals,
		cmd.PaymentMethod(),
		time.Now().UTC(),
	)
	if err != nil {
		return "", err
	}

	if cmd.CouponCode() != "" {
		if err = aggregate.ApplyCoupon(cmd.CouponCode(), *cmd.OfferPrice()); err != nil {
			return "", err
		}
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return "", err
	}

	if err = h.clearCart(ctx, uow, cmd); err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	publishOrderCreated(ctx, h.events, aggregate)
	return code, nil
}

func (h *CheckoutCommandHandler) resolveLines(ctx context.Context, items []CheckoutItem) ([]order.Line, error) {
	lines := make([]order.Line, 0, len(items))
	for _, item := range items {
		product, err := h.catalog.GetProduct(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}

		if !product.IsActive {
			return nil, errs.NewObjectNotFoundError("product", item.ProductID)
		}

		line, err := order.NewLine(product.ID, product.Name, product.Price, item.Quantity, item.VariantName)
		if err != nil {
			return nil, err
		}

		lines = append(lines, line)
	}

	return lines, nil
}

func (h *CheckoutCommandHandler) clearCart(ctx context.Context, uow UoW, cmd CheckoutCommand) error {
	if cmd.CustomerID() == nil {
		return nil
	}

	cartRepo := uow.CartRepository()

	aggregate, err := cartRepo.GetByCustomer(ctx, *cmd.CustomerID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil
		}
		return err
	}

	aggregate.Clear()
	return cartRepo.Update(ctx, aggregate)
}
