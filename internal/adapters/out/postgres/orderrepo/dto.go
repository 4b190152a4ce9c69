// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The public code, owning customer, and status are indexed for the lookup
// patterns of the storefront and the admin dashboard.
type OrderDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Code            string     `gorm:"uniqueIndex"`
	CustomerID      *uuid.UUID `gorm:"type:uuid;index"`
	CustomerName    string
	Phone           string
	Address         string
	Notes           string
	Latitude        *float64
	Longitude       *float64
	Subtotal        int64
	DeliveryFee     int64
	Total           int64
	PaymentMethod   int
	Status          int `gorm:"index"`
	ShopID          *uuid.UUID `gorm:"type:uuid"`
	DeliveryAgent   string
	ShopPrice       int64
	ShopMargin      int64
	ShopPaid        bool
	OTP             string
	CouponCode      string
	OfferPrice      *int64
	CancelledReason string
	CreatedAt       time.Time `gorm:"index"`

	AssignedShopAt     *time.Time
	AssignedDeliveryAt *time.Time
	PickedUpAt         *time.Time
	DeliveredAt        *time.Time
	CancelledAt        *time.Time

	Lines []OrderLineDTO `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO represents one snapshotted order line.
// Lines are written once at checkout and never change afterwards.
type OrderLineDTO struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	OrderID     uuid.UUID `gorm:"type:uuid;index"`
	ProductID   uuid.UUID `gorm:"type:uuid"`
	Name        string
	Price       int64
	Quantity    int
	VariantName string
}

// TableName specifies the database table name for order lines.
func (OrderLineDTO) TableName() string {
	return "order_lines"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	contact := aggregate.Contact()

	var customerID *uuid.UUID
	if id := contact.CustomerID(); id != nil {
		raw := id.Bytes()
		customerID = &raw
	}

	var latitude, longitude *float64
	if location := contact.Location(); location != nil {
		lat := location.Latitude()
		lng := location.Longitude()
		latitude = &lat
		longitude = &lng
	}

	var shopID *uuid.UUID
	if id := aggregate.ShopID(); id != nil {
		raw := id.Bytes()
		shopID = &raw
	}

	lines := make([]OrderLineDTO, 0, len(aggregate.Lines()))
	for _, line := range aggregate.Lines() {
		lines = append(lines, OrderLineDTO{
			OrderID:     aggregate.ID().Bytes(),
			ProductID:   line.ProductID().Bytes(),
			Name:        line.Name(),
			Price:       line.Price(),
			Quantity:    line.Quantity(),
			VariantName: line.VariantName(),
		})
	}

	timeline := aggregate.Timeline()
	totals := aggregate.Totals()

	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		Code:            aggregate.Code(),
		CustomerID:      customerID,
		CustomerName:    contact.Name(),
		Phone:           contact.Phone(),
		Address:         contact.Address(),
		Notes:           contact.Notes(),
		Latitude:        latitude,
		Longitude:       longitude,
		Subtotal:        totals.Subtotal,
		DeliveryFee:     totals.DeliveryFee,
		Total:           totals.Total,
		PaymentMethod:   int(aggregate.PaymentMethod()),
		Status:          int(aggregate.Status()),
		ShopID:          shopID,
		DeliveryAgent:   aggregate.DeliveryAgent(),
		ShopPrice:       aggregate.ShopPrice(),
		ShopMargin:      aggregate.ShopMargin(),
		ShopPaid:        aggregate.ShopPaid(),
		OTP:             aggregate.OTP(),
		CouponCode:      aggregate.CouponCode(),
		OfferPrice:      aggregate.OfferPrice(),
		CancelledReason: aggregate.CancelledReason(),
		CreatedAt:       timeline.CreatedAt(),

		AssignedShopAt:     timeline.AssignedShopAt(),
		AssignedDeliveryAt: timeline.AssignedDeliveryAt(),
		PickedUpAt:         timeline.PickedUpAt(),
		DeliveredAt:        timeline.DeliveredAt(),
		CancelledAt:        timeline.CancelledAt(),

		Lines: lines,
	}
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var customerID *kernel.UUID
	if dto.CustomerID != nil {
		cID, customerErr := kernel.UUIDFromBytes((*dto.CustomerID)[:])
		if customerErr != nil {
			return nil, customerErr
		}
		customerID = &cID
	}

	var location *kernel.GeoPoint
	if dto.Latitude != nil && dto.Longitude != nil {
		point, locErr := kernel.NewGeoPoint(*dto.Latitude, *dto.Longitude)
		if locErr != nil {
			return nil, locErr
		}
		location = &point
	}

	contact, err := order.NewContact(customerID, dto.CustomerName, dto.Phone, dto.Address, dto.Notes, location)
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		productID, lineErr := kernel.UUIDFromBytes(lineDTO.ProductID[:])
		if lineErr != nil {
			return nil, lineErr
		}

		line, lineErr := order.NewLine(productID, lineDTO.Name, lineDTO.Price, lineDTO.Quantity, lineDTO.VariantName)
		if lineErr != nil {
			return nil, lineErr
		}

		lines = append(lines, line)
	}

	var shopID *kernel.UUID
	if dto.ShopID != nil {
		sID, shopErr := kernel.UUIDFromBytes((*dto.ShopID)[:])
		if shopErr != nil {
			return nil, shopErr
		}
		shopID = &sID
	}

	timeline := order.RestoreTimeline(
		dto.CreatedAt,
		dto.AssignedShopAt,
		dto.AssignedDeliveryAt,
		dto.PickedUpAt,
		dto.DeliveredAt,
		dto.CancelledAt,
	)

	return order.RestoreOrder(
		id,
		dto.Code,
		contact,
		lines,
		order.Totals{Subtotal: dto.Subtotal, DeliveryFee: dto.DeliveryFee, Total: dto.Total},
		order.PaymentMethod(dto.PaymentMethod),
		order.Status(dto.Status),
		shopID,
		dto.DeliveryAgent,
		dto.ShopPrice,
		dto.ShopMargin,
		dto.ShopPaid,
		dto.OTP,
		dto.CouponCode,
		dto.OfferPrice,
		timeline,
		dto.CancelledReason,
	)
}
