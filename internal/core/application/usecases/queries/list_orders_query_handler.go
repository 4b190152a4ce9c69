package queries

import (
	"context"

	"marketplace/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// ListOrdersQueryHandler retrieves the admin order table from the database.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for admin order listings.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the listing query.
// The search filter matches order code, customer name, and phone,
// case-insensitively. Statuses are rendered as dashboard slugs.
func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) ([]ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			o.code,
			o.customer_name,
			o.phone,
			o.address,
			o.status,
			COALESCE((
				SELECT string_agg(ol.name || ' x' || ol.quantity, ', ' ORDER BY ol.id)
				FROM order_lines ol
				WHERE ol.order_id = o.id
			), '') AS items,
			o.subtotal,
			o.delivery_fee,
			o.total,
			o.payment_method,
			o.shop_price,
			o.shop_margin,
			o.shop_paid,
			o.delivery_agent,
			o.otp,
			o.created_at
		FROM orders o
	`

	args := make([]interface{}, 0, 4)
	where := make([]string, 0, 2)

	if status := query.Status(); status != nil {
		where = append(where, "o.status = ?")
		args = append(args, int(*status))
	}

	if search := query.Search(); search != "" {
		pattern := "%" + search + "%"
		where = append(where, "(o.code ILIKE ? OR o.customer_name ILIKE ? OR o.phone ILIKE ?)")
		args = append(args, pattern, pattern, pattern)
	}

	for i, clause := range where {
		if i == 0 {
			sql += " WHERE " + clause
		} else {
			sql += " AND " + clause
		}
	}

	sql += " ORDER BY o.created_at DESC"

	responses := make([]ListOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp ListOrdersQueryResponse
		var status, paymentMethod int

		err = rows.Scan(
			&resp.Code,
			&resp.CustomerName,
			&resp.Phone,
			&resp.Address,
			&status,
			&resp.Items,
			&resp.Subtotal,
			&resp.DeliveryFee,
			&resp.Total,
			&paymentMethod,
			&resp.ShopPrice,
			&resp.ShopMargin,
			&resp.ShopPaid,
			&resp.DeliveryAgent,
			&resp.OTP,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		resp.Status = order.Status(status).Slug()
		resp.PaymentMode = order.PaymentMethod(paymentMethod).Mode()
		responses = append(responses, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return responses, nil
}
