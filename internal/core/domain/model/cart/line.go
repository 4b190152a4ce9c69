package cart

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// ErrLineIsNotConstructed is returned when a Line was not created through
// the NewLine factory method.
var ErrLineIsNotConstructed = errors.New("cart Line must be created via NewLine constructor")

// Line is a mutable cart line item. Name and price are snapshots of the
// catalog state at the time the product was added; the quantity changes as
// the customer edits the cart. The uniqueness key within a cart is
// (product, variant).
type Line struct { //nolint:recvcheck //using for validation
	productID   kernel.UUID
	name        string
	price       int64
	quantity    int
	variantName string

	guard guard.ConstructorGuard
}

// NewLine creates a cart line with a snapshot of the catalog name and price.
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

// ProductID returns the catalog product the line refers to.
func (l Line) ProductID() kernel.UUID {
	return l.productID
}

// Name returns the product name snapshot.
func (l Line) Name() string {
	return l.name
}

// Price returns the unit price snapshot in whole currency units.
func (l Line) Price() int64 {
	return l.price
}

// Quantity returns the current quantity.
func (l Line) Quantity() int {
	return l.quantity
}

// VariantName returns the chosen variant, or an empty string.
func (l Line) VariantName() string {
	return l.variantName
}

// matches reports whether the line has the given (product, variant) key.
func (l Line) matches(productID kernel.UUID, variantName string) bool {
	return l.productID.IsEqual(productID) && l.variantName == variantName
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
