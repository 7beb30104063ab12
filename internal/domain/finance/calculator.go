// Package finance derives invoice totals and formats amounts for display.
//
// The calculator uses float64 arithmetic and performs no currency-aware
// rounding; rounding only happens in the display helpers.
package finance

import (
	"math"

	"invoice_service/internal/domain/entities"
)

// Totals groups the derived values stored on an invoice.
type Totals struct {
	Subtotal       float64
	DiscountRate   float64
	DiscountAmount float64
	Total          float64
}

// ComputeSubtotal sums item prices. NaN and infinite prices count as 0.
func ComputeSubtotal(items []entities.InvoiceItem) float64 {
	subtotal := 0.0
	for _, it := range items {
		subtotal += priceOf(it)
	}
	return subtotal
}

// ComputeDiscountAmount returns subtotal*rate/100 when the discount is
// enabled and the rate is positive, else 0. Rates above 100 are not clamped.
func ComputeDiscountAmount(subtotal, discountRate float64, discountEnabled bool) float64 {
	if !discountEnabled || !(discountRate > 0) {
		return 0
	}
	return subtotal * (discountRate / 100)
}

// ComputeTotal may return a negative value when the discount exceeds the subtotal.
func ComputeTotal(subtotal, discountAmount float64) float64 {
	return subtotal - discountAmount
}

// Compute runs the three steps in order.
func Compute(items []entities.InvoiceItem, discountRate float64, discountEnabled bool) Totals {
	subtotal := ComputeSubtotal(items)
	discount := ComputeDiscountAmount(subtotal, discountRate, discountEnabled)
	rate := discountRate
	if !discountEnabled {
		rate = 0
	}
	return Totals{
		Subtotal:       subtotal,
		DiscountRate:   rate,
		DiscountAmount: discount,
		Total:          ComputeTotal(subtotal, discount),
	}
}

// ComputeForInvoice derives totals from the invoice's own items and rate.
// A stored rate greater than zero means the discount was enabled.
func ComputeForInvoice(inv entities.Invoice) Totals {
	return Compute(inv.Items, inv.DiscountRate, inv.DiscountRate > 0)
}

// Consistent reports whether the stored derived values match the items
// within tolerance.
func Consistent(inv entities.Invoice, tolerance float64) bool {
	want := ComputeForInvoice(inv)
	return math.Abs(want.Subtotal-inv.Subtotal) <= tolerance &&
		math.Abs(want.DiscountAmount-inv.DiscountAmount) <= tolerance &&
		math.Abs(want.Total-inv.Total) <= tolerance
}

func priceOf(it entities.InvoiceItem) float64 {
	if math.IsNaN(it.Price) || math.IsInf(it.Price, 0) {
		return 0
	}
	return it.Price
}
