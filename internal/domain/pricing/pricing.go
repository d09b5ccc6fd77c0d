// Package pricing computes order totals from cart lines using the store's fixed tax and shipping rules.
package pricing

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ShippingMethodExpress selects the express shipping rate. Any other value selects standard shipping.
const ShippingMethodExpress = "express"

// Rules holds the tax and shipping schedule.
type Rules struct {
	TaxRate               decimal.Decimal // Flat rate applied to the subtotal.
	FreeShippingThreshold decimal.Decimal // Subtotals at or above this ship free.
	StandardShipping      decimal.Decimal
	ExpressShipping       decimal.Decimal
}

// DefaultRules is an 18% flat tax, free shipping from 50,000, otherwise 499 express or 199 standard.
func DefaultRules() Rules {
	return Rules{
		TaxRate:               decimal.RequireFromString("0.18"),
		FreeShippingThreshold: decimal.NewFromInt(50000),
		StandardShipping:      decimal.NewFromInt(199),
		ExpressShipping:       decimal.NewFromInt(499),
	}
}

// Line is one priced cart line.
type Line struct {
	UnitPrice decimal.Decimal
	Quantity  int
}

// Subtotal is UnitPrice × Quantity.
func (l Line) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Quote is the full price breakdown of an order. Total always equals Subtotal + ShippingCost + Tax.
type Quote struct {
	Subtotal     decimal.Decimal
	ShippingCost decimal.Decimal
	Tax          decimal.Decimal
	Total        decimal.Decimal
}

// ShippingCost applies the shipping schedule to a subtotal. The method match is case-insensitive.
func (r Rules) ShippingCost(subtotal decimal.Decimal, method string) decimal.Decimal {
	if subtotal.GreaterThanOrEqual(r.FreeShippingThreshold) {
		return decimal.Zero
	}
	if strings.EqualFold(method, ShippingMethodExpress) {
		return r.ExpressShipping
	}

	return r.StandardShipping
}

// Tax applies the flat rate to a subtotal, rounded to two fractional digits.
func (r Rules) Tax(subtotal decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(r.TaxRate).Round(2)
}

// Quote prices the given lines.
func (r Rules) Quote(lines []Line, shippingMethod string) Quote {
	subtotal := decimal.Zero
	for _, line := range lines {
		subtotal = subtotal.Add(line.Subtotal())
	}

	shipping := r.ShippingCost(subtotal, shippingMethod)
	tax := r.Tax(subtotal)

	return Quote{
		Subtotal:     subtotal,
		ShippingCost: shipping,
		Tax:          tax,
		Total:        subtotal.Add(shipping).Add(tax),
	}
}
