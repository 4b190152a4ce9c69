package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetCartQueryIsNotConstructed = errors.New(
	"GetCartQuery must be created via NewGetCartQuery constructor",
)

// GetCartQuery retrieves the current contents of a customer's cart.
// A customer without a cart gets an empty view, not an error.
type GetCartQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCartQuery creates a query for a customer's cart contents.
func NewGetCartQuery(customerID kernel.UUID) (GetCartQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCartQuery{}, err
	}

	return GetCartQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

// CustomerID returns the cart owner being queried.
func (q GetCartQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// CartItemResponse is one line of the cart view.
type CartItemResponse struct {
	ProductID   kernel.UUID
	Name        string
	Price       int64
	Quantity    int
	VariantName string
	LineTotal   int64
}

// GetCartQueryResponse is the cart view returned to the storefront.
type GetCartQueryResponse struct {
	Items    []CartItemResponse
	Subtotal int64
}
