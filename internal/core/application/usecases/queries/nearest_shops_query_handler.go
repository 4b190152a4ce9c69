package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/shop"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NearestShopsQueryHandler ranks active shops for an order's delivery location.
type NearestShopsQueryHandler struct {
	db     *gorm.DB
	ranker services.ShopRanker
}

// NewNearestShopsQueryHandler creates a handler for shop ranking queries.
func NewNearestShopsQueryHandler(db *gorm.DB, ranker services.ShopRanker) NearestShopsQueryHandler {
	return NearestShopsQueryHandler{
		db:     db,
		ranker: ranker,
	}
}

// Handle executes the ranking query.
// Orders without resolvable coordinates, or shop sets without any, fall back
// to a random sample of active shops with no distances.
func (h NearestShopsQueryHandler) Handle(
	ctx context.Context,
	query NearestShopsQuery,
) (NearestShopsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return NearestShopsQueryResponse{}, err
	}

	orderLocation, err := h.loadOrderLocation(ctx, query.OrderCode())
	if err != nil {
		return NearestShopsQueryResponse{}, err
	}

	shops, err := h.loadActiveShops(ctx)
	if err != nil {
		return NearestShopsQueryResponse{}, err
	}

	candidates, err := h.ranker.Rank(orderLocation, shops)
	if err != nil {
		return NearestShopsQueryResponse{}, err
	}

	response := NearestShopsQueryResponse{
		OrderCode: query.OrderCode(),
		Degraded:  len(candidates) > 0,
		Shops:     make([]NearestShopResponse, 0, len(candidates)),
	}

	for _, candidate := range candidates {
		if candidate.DistanceKm != nil {
			response.Degraded = false
		}

		response.Shops = append(response.Shops, NearestShopResponse{
			ID:          candidate.Shop.ID,
			Name:        candidate.Shop.Name,
			Phone:       candidate.Shop.Phone,
			AddressLine: candidate.Shop.AddressLine,
			Rating:      candidate.Shop.Rating,
			Products:    candidate.Shop.Products,
			DistanceKm:  candidate.DistanceKm,
		})
	}

	return response, nil
}

func (h NearestShopsQueryHandler) loadOrderLocation(ctx context.Context, code string) (*kernel.GeoPoint, error) {
	var latitude, longitude *float64

	row := h.db.WithContext(ctx).Raw(`
		SELECT latitude, longitude
		FROM orders
		WHERE code = ?
	`, code).Row()

	if err := row.Scan(&latitude, &longitude); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NewObjectNotFoundError("order", code)
		}
		return nil, err
	}

	if latitude == nil || longitude == nil {
		return nil, nil
	}

	location, err := kernel.NewGeoPoint(*latitude, *longitude)
	if err != nil {
		return nil, err
	}

	return &location, nil
}

func (h NearestShopsQueryHandler) loadActiveShops(ctx context.Context) ([]shop.Shop, error) {
	shops := make([]shop.Shop, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, phone, address_line, latitude, longitude, rating, products
		FROM shops
		WHERE is_active
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var s shop.Shop
		var id uuid.UUID
		var latitude, longitude *float64
		var products []byte

		err = rows.Scan(
			&id,
			&s.Name,
			&s.Phone,
			&s.AddressLine,
			&latitude,
			&longitude,
			&s.Rating,
			&products,
		)
		if err != nil {
			return nil, err
		}

		shopID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		s.ID = shopID
		s.IsActive = true

		if len(products) > 0 {
			if err = json.Unmarshal(products, &s.Products); err != nil {
				return nil, err
			}
		}

		if latitude != nil && longitude != nil {
			location, locErr := kernel.NewGeoPoint(*latitude, *longitude)
			if locErr != nil {
				return nil, locErr
			}
			s.Location = &location
		}

		shops = append(shops, s)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shops, nil
}
