package cart

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// ErrCartIsNotConstructed is returned when a Cart instance was not created
// through the NewCart or RestoreCart factory methods.
var ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart or RestoreCart constructor")

// Cart is the aggregate root for a customer's pending line items.
//
// Invariants:
//   - owned by exactly one customer
//   - at most one line per (product, variant) key
//   - line insertion order is preserved
//   - quantities are always at least 1; edits that would drop a quantity
//     to zero or below delete the line instead
type Cart struct {
	id         kernel.UUID
	customerID kernel.UUID
	lines      []Line

	isConstructed bool
}

// NewCart creates an empty cart for a customer. Carts are created lazily:
// the first add for a customer brings their cart into existence.
func NewCart(id kernel.UUID, customerID kernel.UUID) (*Cart, error) {
	cart := &Cart{
		isConstructed: true,
	}

	if err := errors.Join(cart.setID(id), cart.setCustomerID(customerID)); err != nil {
		return nil, err
	}

	return cart, nil
}

// RestoreCart reconstructs a cart from persistence.
func RestoreCart(id kernel.UUID, customerID kernel.UUID, lines []Line) (*Cart, error) {
	cart, err := NewCart(id, customerID)
	if err != nil {
		return nil, err
	}

	for _, line := range lines {
		if lineErr := line.Validate(); lineErr != nil {
			return nil, lineErr
		}
	}

	cart.lines = make([]Line, len(lines))
	copy(cart.lines, lines)
	return cart, nil
}

// Validate ensures the Cart instance was properly constructed.
func (c *Cart) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCartIsNotConstructed
	}
	return nil
}

// ID returns the cart's storage identity.
func (c *Cart) ID() kernel.UUID { return c.id }

// CustomerID returns the owning customer.
func (c *Cart) CustomerID() kernel.UUID { return c.customerID }

// Lines returns the line items in insertion order. The returned slice is a
// copy; mutating it does not affect the cart.
func (c *Cart) Lines() []Line {
	lines := make([]Line, len(c.lines))
	copy(lines, c.lines)
	return lines
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// AddLine merges a line into the cart. If a line with the same (product,
// variant) key already exists, the quantities are summed and the existing
// price snapshot is kept; otherwise the line is appended, preserving
// insertion order.
func (c *Cart) AddLine(line Line) error {
	if err := line.Validate(); err != nil {
		return err
	}

	for i := range c.lines {
		if c.lines[i].matches(line.ProductID(), line.VariantName()) {
			c.lines[i].quantity += line.Quantity()
			return nil
		}
	}

	c.lines = append(c.lines, line)
	return nil
}

// SetQuantity overwrites the quantity of the line with the given key.
// A quantity of zero or less deletes the line instead of storing a
// non-positive quantity. Returns a not-found error when no line matches.
func (c *Cart) SetQuantity(productID kernel.UUID, variantName string, quantity int) error {
	for i := range c.lines {
		if !c.lines[i].matches(productID, variantName) {
			continue
		}

		if quantity <= 0 {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return nil
		}

		c.lines[i].quantity = quantity
		return nil
	}

	return errs.NewObjectNotFoundError("cartLine", productID.String())
}

// Remove deletes the line with the given key. Removing an absent line is a
// no-op, matching idempotent-delete semantics.
func (c *Cart) Remove(productID kernel.UUID, variantName string) {
	for i := range c.lines {
		if c.lines[i].matches(productID, variantName) {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Clear removes every line. The cart itself stays; successful checkout
// clears rather than deletes it.
func (c *Cart) Clear() {
	c.lines = nil
}

func (c *Cart) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Cart) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}
