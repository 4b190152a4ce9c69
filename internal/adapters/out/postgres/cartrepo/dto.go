// Package cartrepo provides data transfer objects and mapping functions for cart persistence.
// Carts are small mutable aggregates, so updates rewrite the line set wholesale.
package cartrepo

import (
	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CartDTO represents the database structure for persisting cart aggregates.
// One cart per customer is enforced by the unique index.
type CartDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID `gorm:"type:uuid;uniqueIndex"`

	Lines []CartLineDTO `gorm:"foreignKey:CartID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for cart entities.
func (CartDTO) TableName() string {
	return "carts"
}

// CartLineDTO represents one cart line with its product snapshot.
type CartLineDTO struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	CartID      uuid.UUID `gorm:"type:uuid;index"`
	ProductID   uuid.UUID `gorm:"type:uuid"`
	Name        string
	Price       int64
	Quantity    int
	VariantName string
}

// TableName specifies the database table name for cart lines.
func (CartLineDTO) TableName() string {
	return "cart_lines"
}

// fromDomain converts a cart domain aggregate to its database representation.
func fromDomain(aggregate *cart.Cart) CartDTO {
	lines := make([]CartLineDTO, 0, len(aggregate.Lines()))
	for _, line := range aggregate.Lines() {
		lines = append(lines, CartLineDTO{
			CartID:      aggregate.ID().Bytes(),
			ProductID:   line.ProductID().Bytes(),
			Name:        line.Name(),
			Price:       line.Price(),
			Quantity:    line.Quantity(),
			VariantName: line.VariantName(),
		})
	}

	return CartDTO{
		ID:         aggregate.ID().Bytes(),
		CustomerID: aggregate.CustomerID().Bytes(),
		Lines:      lines,
	}
}

// toDomain converts a database DTO to a cart domain aggregate using RestoreCart.
func toDomain(dto CartDTO) (*cart.Cart, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	lines := make([]cart.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		productID, lineErr := kernel.UUIDFromBytes(lineDTO.ProductID[:])
		if lineErr != nil {
			return nil, lineErr
		}

		line, lineErr := cart.NewLine(productID, lineDTO.Name, lineDTO.Price, lineDTO.Quantity, lineDTO.VariantName)
		if lineErr != nil {
			return nil, lineErr
		}

		lines = append(lines, line)
	}

	return cart.RestoreCart(id, customerID, lines)
}
