package domain

// Coupon is a promotional rule: a percentage discount on the subtotal
// and/or free shipping. Invalid coupons are kept in the known set so that
// applying them can be rejected explicitly.
type Coupon struct {
	Code         string  `json:"code"`
	Discount     float64 `json:"discount"` // percentage, 0-100
	FreeShipping bool    `json:"free_shipping,omitempty"`
	Valid        bool    `json:"valid"`
}
