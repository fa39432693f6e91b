package pricing

import "github.com/ADSorokin/ShopMaster/internal/domain"

// DefaultShippingFee is the flat shipping fee in base currency units.
const DefaultShippingFee = 500.0

// Calculator derives order totals from line items and an optional coupon.
// It is a pure computation: inputs are never mutated and repeated calls
// with the same inputs yield the same result. Values stay unrounded;
// presentation rounding is the formatter's job.
type Calculator struct {
	ShippingFee float64
}

func NewCalculator(shippingFee float64) *Calculator {
	return &Calculator{ShippingFee: shippingFee}
}

// Totals computes subtotal, coupon discount, shipping and grand total.
//
//	subtotal = sum(finalPrice * quantity)
//	discount = subtotal * coupon.Discount/100 (zero without a coupon)
//	shipping = 0 with a free-shipping coupon, flat fee otherwise
//	total    = subtotal - discount + shipping
func (c *Calculator) Totals(items []domain.LineItem, coupon *domain.Coupon) domain.Totals {
	var subtotal float64
	for _, li := range items {
		subtotal += li.FinalPrice * float64(li.Quantity)
	}

	var discount float64
	shipping := c.ShippingFee
	if coupon != nil {
		if coupon.Discount > 0 {
			discount = subtotal * coupon.Discount / 100
		}
		if coupon.FreeShipping {
			shipping = 0
		}
	}

	return domain.Totals{
		Subtotal: subtotal,
		Discount: discount,
		Shipping: shipping,
		Total:    subtotal - discount + shipping,
	}
}
