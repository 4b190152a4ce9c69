package queries

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetMyOrdersQueryHandler retrieves a customer's order history from the database.
type GetMyOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetMyOrdersQueryHandler creates a handler for customer order history.
func NewGetMyOrdersQueryHandler(db *gorm.DB) GetMyOrdersQueryHandler {
	return GetMyOrdersQueryHandler{db: db}
}

// Handle executes the history query, newest orders first.
func (h GetMyOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetMyOrdersQuery,
) ([]GetMyOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, index, err := h.loadOrders(ctx, query.CustomerID())
	if err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return orders, nil
	}

	if err = h.loadItems(ctx, query.CustomerID(), orders, index); err != nil {
		return nil, err
	}

	return orders, nil
}

func (h GetMyOrdersQueryHandler) loadOrders(
	ctx context.Context,
	customerID kernel.UUID,
) ([]GetMyOrdersQueryResponse, map[uuid.UUID]int, error) {
	orders := make([]GetMyOrdersQueryResponse, 0)
	index := make(map[uuid.UUID]int)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			code,
			status,
			subtotal,
			delivery_fee,
			total,
			payment_method,
			coupon_code,
			offer_price,
			delivery_agent,
			otp,
			created_at,
			cancelled_reason
		FROM orders
		WHERE customer_id = ?
		ORDER BY created_at DESC
	`, customerID.Bytes()).Rows()
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetMyOrdersQueryResponse
		var id uuid.UUID
		var status, paymentMethod int

		err = rows.Scan(
			&id,
			&resp.Code,
			&status,
			&resp.Subtotal,
			&resp.DeliveryFee,
			&resp.Total,
			&paymentMethod,
			&resp.CouponCode,
			&resp.OfferPrice,
			&resp.DeliveryAgent,
			&resp.OTP,
			&resp.CreatedAt,
			&resp.CancelledReason,
		)
		if err != nil {
			return nil, nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, nil, idErr
		}

		resp.ID = orderID
		resp.Status = order.Status(status).String()
		resp.PaymentMode = order.PaymentMethod(paymentMethod).Mode()
		resp.Items = make([]OrderItemResponse, 0)

		index[id] = len(orders)
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	return orders, index, nil
}

func (h GetMyOrdersQueryHandler) loadItems(
	ctx context.Context,
	customerID kernel.UUID,
	orders []GetMyOrdersQueryResponse,
	index map[uuid.UUID]int,
) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			ol.order_id,
			ol.name,
			ol.price,
			ol.quantity,
			ol.variant_name
		FROM order_lines ol
		JOIN orders o ON o.id = ol.order_id
		WHERE o.customer_id = ?
		ORDER BY ol.id
	`, customerID.Bytes()).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var orderID uuid.UUID
		var item OrderItemResponse

		err = rows.Scan(
			&orderID,
			&item.Name,
			&item.Price,
			&item.Quantity,
			&item.VariantName,
		)
		if err != nil {
			return err
		}

		if i, ok := index[orderID]; ok {
			orders[i].Items = append(orders[i].Items, item)
		}
	}

	return rows.Err()
}
