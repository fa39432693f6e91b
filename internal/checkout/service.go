package checkout

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/ADSorokin/ShopMaster/internal/cart"
	"github.com/ADSorokin/ShopMaster/internal/coupon"
	"github.com/ADSorokin/ShopMaster/internal/domain"
	"github.com/ADSorokin/ShopMaster/internal/order"
	"github.com/ADSorokin/ShopMaster/internal/pricing"
	"github.com/google/uuid"
)

// ErrEmptyCart is returned when there is nothing to check out.
var ErrEmptyCart = errors.New("cart is empty, nothing to checkout")

// Service turns the live cart into an immutable order. The snapshot and the
// committed order are captured strictly before the cart is cleared, so an
// order can never reflect a cleared cart and an order is never missing from
// history while the cart still holds its items.
type Service struct {
	mu      sync.Mutex
	cart    *cart.Cart
	coupons *coupon.Validator
	calc    *pricing.Calculator
	orders  order.Store
}

func NewService(c *cart.Cart, v *coupon.Validator, calc *pricing.Calculator, store order.Store) *Service {
	return &Service{
		cart:    c,
		coupons: v,
		calc:    calc,
		orders:  store,
	}
}

// PlaceOrder snapshots the current cart, computes totals against the
// snapshot, commits the order with status processing, and only then clears
// the cart and unsets the applied coupon. The whole sequence runs in one
// critical section so concurrent readers either see the items in the cart or
// the order in history, never neither.
func (s *Service) PlaceOrder(delivery domain.Delivery, payment domain.Payment) (domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.cart.Items()
	if len(snapshot) == 0 {
		return domain.Order{}, ErrEmptyCart
	}

	totals := s.calc.Totals(snapshot, s.coupons.Applied())

	o := domain.Order{
		ID:        uuid.New().String(),
		Items:     snapshot,
		Totals:    totals,
		Delivery:  delivery,
		Payment:   payment,
		Status:    domain.OrderStatusProcessing,
		CreatedAt: time.Now(),
	}

	if err := s.orders.Add(o); err != nil {
		return domain.Order{}, fmt.Errorf("failed to commit order: %w", err)
	}

	// The order is committed; only now may the live cart state go away.
	s.cart.Clear()
	s.coupons.Reset()

	log.Printf("order %s placed: %d items, total %.2f", o.ID, len(o.Items), o.Totals.Total)
	return o, nil
}
