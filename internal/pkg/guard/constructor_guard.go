// Package guard implements the constructor guard pattern used by domain
// value objects and aggregates. Embedding a ConstructorGuard lets a type
// distinguish instances produced by its constructor from zero values, so
// invariants established at construction time cannot be bypassed.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is supplied for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its designated
// constructor. The zero value fails validation.
//
// Example:
//
//	type Cart struct {
//	    customerID kernel.UUID
//	    guard      guard.ConstructorGuard
//	}
//
//	func NewCart(customerID kernel.UUID) (*Cart, error) {
//	    ...
//	    return &Cart{customerID: customerID, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c *Cart) Validate() error {
//	    return c.guard.Validate(ErrCartIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as
// properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for constructed objects. For zero-value objects it
// returns validationError, or ErrDefaultConstructorGuard when validationError
// is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
