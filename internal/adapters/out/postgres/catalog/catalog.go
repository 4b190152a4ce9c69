package catalog

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/shop"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormProductCatalog implements ProductCatalog using GORM.
type GormProductCatalog struct {
	db *gorm.DB
}

// NewGormProductCatalog creates a read-only product catalog.
func NewGormProductCatalog(db *gorm.DB) *GormProductCatalog {
	return &GormProductCatalog{db: db}
}

// GetProduct retrieves a single product by identifier.
func (c *GormProductCatalog) GetProduct(ctx context.Context, id kernel.UUID) (ports.Product, error) {
	if err := id.Validate(); err != nil {
		return ports.Product{}, err
	}

	var dto ProductDTO
	if err := c.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.Product{}, errs.NewObjectNotFoundError("product", id.String())
		}
		return ports.Product{}, err
	}

	return productToDomain(dto)
}

// GormShopCatalog implements ShopCatalog using GORM.
type GormShopCatalog struct {
	db *gorm.DB
}

// NewGormShopCatalog creates a read-only shop catalog.
func NewGormShopCatalog(db *gorm.DB) *GormShopCatalog {
	return &GormShopCatalog{db: db}
}

// GetShop retrieves a single shop by identifier.
func (c *GormShopCatalog) GetShop(ctx context.Context, id kernel.UUID) (shop.Shop, error) {
	if err := id.Validate(); err != nil {
		return shop.Shop{}, err
	}

	var dto ShopDTO
	if err := c.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return shop.Shop{}, errs.NewObjectNotFoundError("shop", id.String())
		}
		return shop.Shop{}, err
	}

	return shopToDomain(dto)
}

// GetAllActive retrieves every shop currently accepting orders.
func (c *GormShopCatalog) GetAllActive(ctx context.Context) ([]shop.Shop, error) {
	var dtos []ShopDTO
	if err := c.db.WithContext(ctx).Order("name").Find(&dtos, "is_active").Error; err != nil {
		return nil, err
	}

	shops := make([]shop.Shop, 0, len(dtos))
	for _, dto := range dtos {
		s, err := shopToDomain(dto)
		if err != nil {
			return nil, err
		}
		shops = append(shops, s)
	}

	return shops, nil
}
