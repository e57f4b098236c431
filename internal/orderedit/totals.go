package orderedit

import "github.com/parentsfood/shopkit/internal/domain"

// Totals carries the derived monetary figures for a set of order items.
type Totals struct {
	SubTotal   float64
	GrandTotal float64
}

// ComputeTotals derives the order totals from the given items and shipping
// cost. Pure: subTotal is the sum of price times quantity over all items and
// grandTotal is subTotal plus shipping. Called before every save and on every
// render of the edit view so displayed totals can never go stale.
func ComputeTotals(items []domain.OrderItem, shippingCost float64) Totals {
	var subTotal float64
	for _, item := range items {
		subTotal += item.LineTotal()
	}
	return Totals{
		SubTotal:   subTotal,
		GrandTotal: subTotal + shippingCost,
	}
}
