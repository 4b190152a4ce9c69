package services_test

import (
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeLine(t *testing.T, price int64, quantity int) order.Line {
	t.Helper()
	line, err := order.NewLine(kernel.NewUUID(), "item", price, quantity, "")
	require.NoError(t, err)
	return line
}

func TestPricingService_CalcTotals(t *testing.T) {
	pricing := services.NewPricingService()

	t.Run("free_delivery_at_threshold", func(t *testing.T) {
		lines := []order.Line{makeLine(t, 100, 2), makeLine(t, 50, 1)}

		totals := pricing.CalcTotals(lines)

		assert.Equal(t, int64(250), totals.Subtotal)
		assert.Equal(t, int64(0), totals.DeliveryFee)
		assert.Equal(t, int64(250), totals.Total)
	})

	t.Run("flat_fee_below_threshold", func(t *testing.T) {
		lines := []order.Line{makeLine(t, 99, 2)}

		totals := pricing.CalcTotals(lines)

		assert.Equal(t, int64(198), totals.Subtotal)
		assert.Equal(t, int64(20), totals.DeliveryFee)
		assert.Equal(t, int64(218), totals.Total)
	})

	t.Run("exactly_at_threshold_is_free", func(t *testing.T) {
		lines := []order.Line{makeLine(t, 199, 1)}

		totals := pricing.CalcTotals(lines)

		assert.Equal(t, int64(0), totals.DeliveryFee)
		assert.Equal(t, int64(199), totals.Total)
	})

	t.Run("empty_lines", func(t *testing.T) {
		totals := pricing.CalcTotals(nil)

		assert.Equal(t, int64(0), totals.Subtotal)
		assert.Equal(t, services.FlatDeliveryFee, totals.DeliveryFee)
	})

	t.Run("total_always_equals_subtotal_plus_fee", func(t *testing.T) {
		cases := [][]order.Line{
			nil,
			{makeLine(t, 1, 1)},
			{makeLine(t, 100, 1), makeLine(t, 98, 1)},
			{makeLine(t, 100, 2)},
			{makeLine(t, 500, 3), makeLine(t, 20, 4)},
		}

		for _, lines := range cases {
			totals := pricing.CalcTotals(lines)
			assert.Equal(t, totals.Subtotal+totals.DeliveryFee, totals.Total)
			assert.Equal(t, totals.Subtotal >= services.FreeDeliveryThreshold, totals.DeliveryFee == 0)
			require.NoError(t, totals.Validate())
		}
	})
}

func TestPricingService_CalcSellingPrice(t *testing.T) {
	pricing := services.NewPricingService()

	tests := []struct {
		name          string
		shopCost      int64
		marginPercent float64
		want          int64
	}{
		{"twenty_percent_margin", 100, 20, 120},
		{"rounds_half_up", 99, 20, 119}, // 118.8 rounds to 119
		{"rounds_down", 101, 2, 103},    // 103.02 rounds to 103
		{"zero_margin", 150, 0, 150},
		{"zero_cost", 0, 25, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pricing.CalcSellingPrice(tt.shopCost, tt.marginPercent))
		})
	}
}
