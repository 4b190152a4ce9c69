package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/shop"
)

// Product is the catalog read model used to snapshot product data
// into cart and order lines at the moment of adding.
type Product struct {
	ID       kernel.UUID
	Name     string
	Price    int64
	IsActive bool
}

// ProductCatalog provides read access to the product catalog.
// Commands resolve product snapshots through this port so that line
// prices are always taken from the catalog, never from client input.
type ProductCatalog interface {
	// GetProduct retrieves a single product by identifier.
	// Returns errs.ErrObjectNotFound if no such product exists.
	GetProduct(ctx context.Context, id kernel.UUID) (Product, error)
}

// ShopCatalog provides read access to registered shops.
type ShopCatalog interface {
	// GetShop retrieves a single shop by identifier.
	// Returns errs.ErrObjectNotFound if no such shop exists.
	GetShop(ctx context.Context, id kernel.UUID) (shop.Shop, error)

	// GetAllActive retrieves every shop currently accepting orders.
	GetAllActive(ctx context.Context) ([]shop.Shop, error)
}
