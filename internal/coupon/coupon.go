package coupon

import (
	"errors"
	"sync"

	"github.com/ADSorokin/ShopMaster/internal/domain"
)

// ErrInvalidCoupon is returned when a code is unknown or not valid.
var ErrInvalidCoupon = errors.New("invalid coupon code")

// Validator checks promotional codes against an injected set of known
// coupons and tracks the single currently applied coupon. Applying a new
// valid coupon replaces the previous one; coupons never stack.
type Validator struct {
	mu      sync.Mutex
	known   []domain.Coupon
	applied *domain.Coupon
}

func NewValidator(known []domain.Coupon) *Validator {
	return &Validator{known: known}
}

// Apply looks up code among the known valid coupons (case-sensitive exact
// match). On success the matched coupon becomes the applied one. On failure
// ErrInvalidCoupon is returned and any previously applied coupon is kept.
func (v *Validator) Apply(code string) (domain.Coupon, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	for _, c := range v.known {
		if c.Code == code && c.Valid {
			applied := c
			v.applied = &applied
			return c, nil
		}
	}
	return domain.Coupon{}, ErrInvalidCoupon
}

// Applied returns the currently applied coupon, or nil.
func (v *Validator) Applied() *domain.Coupon {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.applied == nil {
		return nil
	}
	c := *v.applied
	return &c
}

// Reset unsets the applied coupon. Called after checkout clears the cart.
func (v *Validator) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.applied = nil
}
