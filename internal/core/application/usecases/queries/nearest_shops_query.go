package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrNearestShopsQueryIsNotConstructed = errors.New(
		"NearestShopsQuery must be created via NewNearestShopsQuery constructor",
	)
	ErrOrderCodeIsRequired = errors.New("order code is required")
)

// NearestShopsQuery ranks active shops by distance to an order's delivery
// location, so dispatchers can pick a shop to route the order to.
type NearestShopsQuery struct {
	orderCode string

	guard guard.ConstructorGuard
}

// NewNearestShopsQuery creates a shop ranking query for one order.
func NewNearestShopsQuery(orderCode string) (NearestShopsQuery, error) {
	if orderCode == "" {
		return NearestShopsQuery{}, ErrOrderCodeIsRequired
	}

	return NearestShopsQuery{
		orderCode: orderCode,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q NearestShopsQuery) Validate() error {
	return q.guard.Validate(ErrNearestShopsQueryIsNotConstructed)
}

// OrderCode returns the public code of the order being dispatched.
func (q NearestShopsQuery) OrderCode() string {
	return q.orderCode
}

// NearestShopResponse is one ranked shop candidate.
// DistanceKm is nil when the distance could not be computed.
type NearestShopResponse struct {
	ID          kernel.UUID
	Name        string
	Phone       string
	AddressLine string
	Rating      float64
	Products    []string
	DistanceKm  *float64
}

// NearestShopsQueryResponse is the ranked candidate list for an order.
// Degraded is true when no distance could be resolved and the list is a
// random sample instead of a ranking.
type NearestShopsQueryResponse struct {
	OrderCode string
	Degraded  bool
	Shops     []NearestShopResponse
}
