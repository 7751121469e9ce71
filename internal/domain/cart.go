package domain

import "github.com/shopspring/decimal"

// Cart domain errors.
var (
	ErrOrderNotFound   = &Error{Code: ENOTFOUND, Message: "Order not found"}
	ErrProductNotFound = &Error{Code: ENOTFOUND, Message: "Product not found"}
)

// CartLine is one product-and-quantity pairing in the cart. The persisted
// blob is a JSON array of these records: the full product shape plus quantity.
// Quantity is always >= 1; a mutation that would drive it to zero removes the
// line instead.
type CartLine struct {
	Product
	Quantity int `json:"quantity"`
}

// DiscountedUnitPrice is the unit price after the catalog discount:
// price * (1 - discountPercentage/100).
func (l CartLine) DiscountedUnitPrice() decimal.Decimal {
	price := decimal.NewFromFloat(l.Price)
	discount := decimal.NewFromFloat(l.DiscountPercentage)
	return price.Mul(hundred.Sub(discount)).Div(hundred)
}

// LineSubtotal is the discounted unit price times the line quantity.
func (l CartLine) LineSubtotal() decimal.Decimal {
	return l.DiscountedUnitPrice().Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// CartSummary is the derived pricing view over the current cart lines.
// It is recomputed on every read and never stored.
type CartSummary struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Total    decimal.Decimal `json:"total"`
}

// Summarize derives the pricing summary for a set of cart lines.
// Total equals subtotal: no tax, shipping, or promotion logic exists here.
func Summarize(lines []CartLine) CartSummary {
	subtotal := decimal.Zero
	for _, line := range lines {
		subtotal = subtotal.Add(line.LineSubtotal())
	}
	return CartSummary{Subtotal: subtotal, Total: subtotal}
}

var hundred = decimal.NewFromInt(100)
