package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestRules_ShippingCost(t *testing.T) {
	t.Parallel()

	rules := DefaultRules()

	tests := []struct {
		name     string
		subtotal string
		method   string
		expected string
	}{
		{name: "free at threshold", subtotal: "50000", method: "", expected: "0"},
		{name: "free above threshold even for express", subtotal: "75000.50", method: "express", expected: "0"},
		{name: "express below threshold", subtotal: "10000", method: "express", expected: "499"},
		{name: "express is case-insensitive", subtotal: "10000", method: "EXPRESS", expected: "499"},
		{name: "standard when method missing", subtotal: "10000", method: "", expected: "199"},
		{name: "standard for unknown method", subtotal: "49999.99", method: "overnight", expected: "199"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := rules.ShippingCost(dec(tt.subtotal), tt.method)
			assert.True(t, dec(tt.expected).Equal(got), "got %s, want %s", got, tt.expected)
		})
	}
}

func TestRules_Quote(t *testing.T) {
	t.Parallel()

	rules := DefaultRules()

	quote := rules.Quote([]Line{
		{UnitPrice: dec("4999.99"), Quantity: 2},
		{UnitPrice: dec("129.50"), Quantity: 1},
	}, "express")

	assert.True(t, dec("10129.48").Equal(quote.Subtotal), "subtotal %s", quote.Subtotal)
	assert.True(t, dec("499").Equal(quote.ShippingCost))
	assert.True(t, dec("1823.31").Equal(quote.Tax), "tax %s", quote.Tax)
	assert.True(t, quote.Subtotal.Add(quote.Tax).Add(quote.ShippingCost).Equal(quote.Total))
	assert.True(t, dec("12451.79").Equal(quote.Total), "total %s", quote.Total)
}

func TestRules_Quote_TotalIsExactSum(t *testing.T) {
	t.Parallel()

	rules := DefaultRules()
	prices := []string{"0.01", "0.10", "19.99", "333.33", "1234.57", "49999.99"}

	for _, p := range prices {
		for qty := 1; qty <= 7; qty++ {
			quote := rules.Quote([]Line{{UnitPrice: dec(p), Quantity: qty}}, "")
			assert.True(t, quote.Subtotal.Add(quote.Tax).Add(quote.ShippingCost).Equal(quote.Total),
				"price %s qty %d", p, qty)
			assert.LessOrEqual(t, -quote.Tax.Exponent(), int32(2))
		}
	}
}

func TestRules_Quote_NoLines(t *testing.T) {
	t.Parallel()

	quote := DefaultRules().Quote(nil, "")

	assert.True(t, quote.Subtotal.IsZero())
	assert.True(t, quote.Tax.IsZero())
	assert.True(t, dec("199").Equal(quote.ShippingCost))
}
