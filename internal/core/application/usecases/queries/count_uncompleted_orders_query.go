package queries

import (
	"errors"

	"marketplace/internal/pkg/guard"
)

var ErrCountUncompletedOrdersQueryIsNotConstructed = errors.New(
	"CountUncompletedOrdersQuery must be created via NewCountUncompletedOrdersQuery constructor",
)

// CountUncompletedOrdersQuery counts orders that still need operator
// attention, meaning everything not yet delivered or cancelled. The
// pending-order digest job logs this number periodically.
type CountUncompletedOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewCountUncompletedOrdersQuery creates a query to count open orders.
func NewCountUncompletedOrdersQuery() CountUncompletedOrdersQuery {
	return CountUncompletedOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q CountUncompletedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrCountUncompletedOrdersQueryIsNotConstructed)
}
