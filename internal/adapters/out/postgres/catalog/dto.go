// Package catalog provides read-only GORM access to the product and shop
// catalogs. Catalog management itself lives outside the order core; this
// package only resolves snapshots and candidate shops.
package catalog

import (
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/shop"
	"marketplace/internal/core/ports"

	"github.com/google/uuid"
)

// ProductDTO represents the database structure of a catalog product.
type ProductDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string
	Price    int64
	IsActive bool `gorm:"index"`
}

// TableName specifies the database table name for products.
func (ProductDTO) TableName() string {
	return "products"
}

// ShopDTO represents the database structure of a registered shop.
// Coordinates are optional, some shops only have an address line.
type ShopDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string
	Phone       string
	AddressLine string
	Latitude    *float64
	Longitude   *float64
	Rating      float64
	Products    []string `gorm:"serializer:json"`
	IsActive    bool     `gorm:"index"`
}

// TableName specifies the database table name for shops.
func (ShopDTO) TableName() string {
	return "shops"
}

func productToDomain(dto ProductDTO) (ports.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.Product{}, err
	}

	return ports.Product{
		ID:       id,
		Name:     dto.Name,
		Price:    dto.Price,
		IsActive: dto.IsActive,
	}, nil
}

func shopToDomain(dto ShopDTO) (shop.Shop, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return shop.Shop{}, err
	}

	var location *kernel.GeoPoint
	if dto.Latitude != nil && dto.Longitude != nil {
		point, locErr := kernel.NewGeoPoint(*dto.Latitude, *dto.Longitude)
		if locErr != nil {
			return shop.Shop{}, locErr
		}
		location = &point
	}

	return shop.Shop{
		ID:          id,
		Name:        dto.Name,
		Phone:       dto.Phone,
		AddressLine: dto.AddressLine,
		Location:    location,
		Rating:      dto.Rating,
		Products:    dto.Products,
		IsActive:    dto.IsActive,
	}, nil
}
