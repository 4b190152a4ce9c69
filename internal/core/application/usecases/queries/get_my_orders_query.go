package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetMyOrdersQueryIsNotConstructed = errors.New(
	"GetMyOrdersQuery must be created via NewGetMyOrdersQuery constructor",
)

// GetMyOrdersQuery retrieves the order history of one customer, newest first.
type GetMyOrdersQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetMyOrdersQuery creates a query for a customer's order history.
func NewGetMyOrdersQuery(customerID kernel.UUID) (GetMyOrdersQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetMyOrdersQuery{}, err
	}

	return GetMyOrdersQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMyOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetMyOrdersQueryIsNotConstructed)
}

// CustomerID returns the customer whose orders are being queried.
func (q GetMyOrdersQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// OrderItemResponse is one line of an order as shown to the customer.
type OrderItemResponse struct {
	Name        string
	Price       int64
	Quantity    int
	VariantName string
}

// GetMyOrdersQueryResponse is one order in the customer's history.
// The OTP is included so the customer can confirm handover to the
// delivery agent.
type GetMyOrdersQueryResponse struct {
	ID              kernel.UUID
	Code            string
	Status          string
	Subtotal        int64
	DeliveryFee     int64
	Total           int64
	PaymentMode     string
	CouponCode      string
	OfferPrice      *int64
	DeliveryAgent   string
	OTP             string
	CreatedAt       time.Time
	CancelledReason string
	Items           []OrderItemResponse
}
