package order

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// ErrLineIsNotConstructed is returned when a Line was not created through
// the NewLine factory method.
var ErrLineIsNotConstructed = errors.New("order Line must be created via NewLine constructor")

// Line is an immutable snapshot of a cart line frozen at checkout time.
// Name and price are copied from the catalog state at that moment, so later
// catalog changes never retroactively alter a placed order. Line is a
// distinct type from cart.Line on purpose: the snapshot invariant is
// enforced structurally, not by convention.
type Line struct { //nolint:recvcheck //using for validation
	productID   kernel.UUID
	name        string
	price       int64
	quantity    int
	variantName string

	guard guard.ConstructorGuard
}

// NewLine creates an order line snapshot.
// Price is in whole currency units and must not be negative; quantity must
// be at least 1. variantName may be empty for products without variants.
func NewLine(productID kernel.UUID, name string, price int64, quantity int, variantName string) (Line, error) {
	line := Line{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		line.setProductID(productID),
		line.setName(name),
		line.setPrice(price),
		line.setQuantity(quantity),
	); err != nil {
		return Line{}, err
	}

	line.variantName = variantName
	return line, nil
}

// Validate ensures the Line was created through NewLine.
func (l Line) Validate() error {
	return l.guard.Validate(ErrLineIsNotConstructed)
}

// ProductID returns the catalog product this line snapshots.
func (l Line) ProductID() kernel.UUID {
	return l.productID
}

// Name returns the product name captured at checkout.
func (l Line) Name() string {
	return l.name
}

// Price returns the unit price captured at checkout, in whole currency units.
func (l Line) Price() int64 {
	return l.price
}

// Quantity returns the ordered quantity.
func (l Line) Quantity() int {
	return l.quantity
}

// VariantName returns the chosen variant, or an empty string.
func (l Line) VariantName() string {
	return l.variantName
}

func (l *Line) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	l.productID = productID
	return nil
}

func (l *Line) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("line name")
	}
	l.name = name
	return nil
}

func (l *Line) setPrice(price int64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%d is negative", price))
	}
	l.price = price
	return nil
}

func (l *Line) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	l.quantity = quantity
	return nil
}
