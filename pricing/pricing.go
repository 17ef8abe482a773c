// Package pricing computes checkout totals. All amounts are int64 minor
// units (paise); floating point is never used for money.
package pricing

import "github.com/chaikart/teashop-api/models"

const (
	// TaxRatePercent is the flat GST rate applied to every order.
	TaxRatePercent = 18
	// ShippingFee is the flat shipping charge in paise.
	ShippingFee int64 = 5000
)

type Totals struct {
	Subtotal int64 `json:"subtotal"`
	Tax      int64 `json:"tax_amount"`
	Shipping int64 `json:"shipping_amount"`
	Total    int64 `json:"total_amount"`
}

// Compute derives the order totals from the cart lines. Lines without a
// joined product contribute nothing; the caller is expected to load carts
// with their products.
func Compute(items []models.CartItem) Totals {
	var subtotal int64
	for _, item := range items {
		if item.Product == nil {
			continue
		}
		subtotal += item.Product.EffectivePrice() * int64(item.Quantity)
	}
	tax := taxOn(subtotal)
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Shipping: ShippingFee,
		Total:    subtotal + tax + ShippingFee,
	}
}

// taxOn rounds half-up to the nearest paisa.
func taxOn(subtotal int64) int64 {
	return (subtotal*TaxRatePercent + 50) / 100
}
