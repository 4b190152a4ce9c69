package postgres

import (
	"marketplace/internal/adapters/out/postgres/cartrepo"
	"marketplace/internal/adapters/out/postgres/catalog"
	"marketplace/internal/adapters/out/postgres/orderrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the full database schema.
// Called on startup and by integration test suites.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineDTO{},
		&cartrepo.CartDTO{},
		&cartrepo.CartLineDTO{},
		&catalog.ProductDTO{},
		&catalog.ShopDTO{},
		&OrderCounterDTO{},
	)
}
