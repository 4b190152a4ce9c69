package services

import (
	"math"

	"marketplace/internal/core/domain/model/order"
)

const (
	// FreeDeliveryThreshold is the subtotal, in whole currency units, from
	// which delivery is free. The same rule is shown on the storefront
	// banner, so changing it here must be coordinated with the frontend.
	FreeDeliveryThreshold int64 = 199

	// FlatDeliveryFee is charged on orders below the free-delivery threshold.
	FlatDeliveryFee int64 = 20
)

// PricingService derives order totals and shop-facing prices. It is a pure
// domain service: both calculations are side-effect free and re-derivable
// from stored order lines for auditing.
//
// Example:
//
//	pricing := NewPricingService()
//	totals := pricing.CalcTotals(order.Lines())
//	// totals.Total == totals.Subtotal + totals.DeliveryFee always holds
type PricingService struct{}

// NewPricingService creates a new PricingService instance.
func NewPricingService() PricingService {
	return PricingService{}
}

// CalcTotals prices a list of order lines: subtotal is the sum of
// price x quantity over all lines, the delivery fee is waived once the
// subtotal reaches FreeDeliveryThreshold, and total is their sum.
func (PricingService) CalcTotals(lines []order.Line) order.Totals {
	var subtotal int64
	for _, line := range lines {
		subtotal += line.Price() * int64(line.Quantity())
	}

	deliveryFee := FlatDeliveryFee
	if subtotal >= FreeDeliveryThreshold {
		deliveryFee = 0
	}

	return order.Totals{
		Subtotal:    subtotal,
		DeliveryFee: deliveryFee,
		Total:       subtotal + deliveryFee,
	}
}

// CalcSellingPrice derives the customer-facing price from a shop's cost and
// a margin percentage: round(shopCost x (1 + marginPercent/100)). The
// catalog uses the same rounding rule, so margins computed from stored
// prices stay consistent with margins computed at assignment time.
func (PricingService) CalcSellingPrice(shopCost int64, marginPercent float64) int64 {
	return int64(math.Round(float64(shopCost) * (1 + marginPercent/100)))
}
