package order

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Totals is the priced summary of an order: subtotal over all lines, the
// delivery fee, and their sum. Amounts are whole currency units.
type Totals struct {
	Subtotal    int64
	DeliveryFee int64
	Total       int64
}

// Validate checks the arithmetic invariant total = subtotal + deliveryFee
// and that no amount is negative.
func (t Totals) Validate() error {
	if t.Subtotal < 0 || t.DeliveryFee < 0 {
		return errs.NewValueIsInvalidErrorWithCause("totals",
			fmt.Errorf("subtotal %d or delivery fee %d is negative", t.Subtotal, t.DeliveryFee))
	}
	if t.Total != t.Subtotal+t.DeliveryFee {
		return errs.NewValueIsInvalidErrorWithCause("totals",
			fmt.Errorf("total %d != subtotal %d + delivery fee %d", t.Total, t.Subtotal, t.DeliveryFee))
	}
	return nil
}
