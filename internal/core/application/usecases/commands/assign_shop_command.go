package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrAssignShopCommandIsNotConstructed = errors.New(
		"AssignShopCommand must be created via NewAssignShopCommand constructor",
	)
	ErrOrderCodeIsRequired = errors.New("order code is required")
	ErrShopPriceIsInvalid  = errors.New("shop price must not be negative")
)

// AssignShopCommand represents an admin request to route an order to a shop.
// Orders are addressed by their public code. Shop price and margin are
// optional; a price without a margin makes the order derive the margin.
type AssignShopCommand struct { //nolint:recvcheck //using for validation
	orderCode  string
	shopID     kernel.UUID
	shopPrice  *int64
	shopMargin *int64

	guard guard.ConstructorGuard
}

// NewAssignShopCommand creates a command to assign a shop to an order.
func NewAssignShopCommand(
	orderCode string,
	shopID kernel.UUID,
	shopPrice *int64,
	shopMargin *int64,
) (AssignShopCommand, error) {
	assignCommand := AssignShopCommand{
		shopMargin: shopMargin,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		assignCommand.setOrderCode(orderCode),
		assignCommand.setShopID(shopID),
		assignCommand.setShopPrice(shopPrice),
	); err != nil {
		return AssignShopCommand{}, err
	}

	return assignCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignShopCommand) Validate() error {
	return c.guard.Validate(ErrAssignShopCommandIsNotConstructed)
}

// OrderCode returns the public code of the order to route.
func (c AssignShopCommand) OrderCode() string {
	return c.orderCode
}

// ShopID returns the shop the order is routed to.
func (c AssignShopCommand) ShopID() kernel.UUID {
	return c.shopID
}

// ShopPrice returns what the shop charges for preparing the order, if recorded.
func (c AssignShopCommand) ShopPrice() *int64 {
	return c.shopPrice
}

// ShopMargin returns the explicit margin, if the admin provided one.
func (c AssignShopCommand) ShopMargin() *int64 {
	return c.shopMargin
}

func (c *AssignShopCommand) setOrderCode(orderCode string) error {
	if orderCode == "" {
		return ErrOrderCodeIsRequired
	}

	c.orderCode = orderCode
	return nil
}

func (c *AssignShopCommand) setShopID(shopID kernel.UUID) error {
	if err := shopID.Validate(); err != nil {
		return err
	}

	c.shopID = shopID
	return nil
}

func (c *AssignShopCommand) setShopPrice(shopPrice *int64) error {
	if shopPrice != nil && *shopPrice < 0 {
		return ErrShopPriceIsInvalid
	}

	c.shopPrice = shopPrice
	return nil
}
