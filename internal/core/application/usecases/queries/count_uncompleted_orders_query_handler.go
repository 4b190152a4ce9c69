package queries

import (
	"context"

	"marketplace/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// CountUncompletedOrdersQueryHandler counts open orders in the database.
type CountUncompletedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewCountUncompletedOrdersQueryHandler creates a handler for the open-order count.
func NewCountUncompletedOrdersQueryHandler(db *gorm.DB) CountUncompletedOrdersQueryHandler {
	return CountUncompletedOrdersQueryHandler{db: db}
}

// Handle executes the count query.
func (h CountUncompletedOrdersQueryHandler) Handle(
	ctx context.Context,
	query CountUncompletedOrdersQuery,
) (int64, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := h.db.WithContext(ctx).
		Raw(
			"SELECT count(*) FROM orders WHERE status NOT IN (?, ?)",
			int(order.StatusDelivered), int(order.StatusCancelled),
		).
		Row().
		Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}
