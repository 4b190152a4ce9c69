package queries

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCartQueryHandler reads cart contents straight from the database.
type GetCartQueryHandler struct {
	db *gorm.DB
}

// NewGetCartQueryHandler creates a handler for cart views.
func NewGetCartQueryHandler(db *gorm.DB) GetCartQueryHandler {
	return GetCartQueryHandler{db: db}
}

// Handle executes the cart query.
// No cart row means an empty cart, the response is the same as a cart with
// all lines removed.
func (h GetCartQueryHandler) Handle(ctx context.Context, query GetCartQuery) (GetCartQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCartQueryResponse{}, err
	}

	response := GetCartQueryResponse{
		Items: make([]CartItemResponse, 0),
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			cl.product_id,
			cl.name,
			cl.price,
			cl.quantity,
			cl.variant_name
		FROM carts c
		JOIN cart_lines cl ON cl.cart_id = c.id
		WHERE c.customer_id = ?
		ORDER BY cl.id
	`, query.CustomerID().Bytes()).Rows()
	if err != nil {
		return GetCartQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var item CartItemResponse
		var productID uuid.UUID

		err = rows.Scan(
			&productID,
			&item.Name,
			&item.Price,
			&item.Quantity,
			&item.VariantName,
		)
		if err != nil {
			return GetCartQueryResponse{}, err
		}

		id, idErr := kernel.UUIDFromBytes(productID[:])
		if idErr != nil {
			return GetCartQueryResponse{}, idErr
		}
		item.ProductID = id
		item.LineTotal = item.Price * int64(item.Quantity)

		response.Items = append(response.Items, item)
		response.Subtotal += item.LineTotal
	}

	if err = rows.Err(); err != nil {
		return GetCartQueryResponse{}, err
	}

	return response, nil
}
