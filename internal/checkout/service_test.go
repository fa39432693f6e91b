package checkout

import (
	"testing"

	"github.com/ADSorokin/ShopMaster/internal/cart"
	"github.com/ADSorokin/ShopMaster/internal/coupon"
	"github.com/ADSorokin/ShopMaster/internal/domain"
	"github.com/ADSorokin/ShopMaster/internal/order"
	"github.com/ADSorokin/ShopMaster/internal/pricing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	phone  = domain.Product{ID: 1, Price: 250}
	laptop = domain.Product{ID: 2, Price: 500}
)

func setupService(t *testing.T) (*Service, *cart.Cart, *coupon.Validator, order.Store) {
	t.Helper()

	c := cart.New()
	v := coupon.NewValidator([]domain.Coupon{
		{Code: "WELCOME10", Discount: 10, Valid: true},
		{Code: "FREESHIP", FreeShipping: true, Valid: true},
	})
	store := order.NewMemoryStore()
	svc := NewService(c, v, pricing.NewCalculator(500), store)
	return svc, c, v, store
}

func TestPlaceOrder_EmptyCart(t *testing.T) {
	svc, _, _, _ := setupService(t)

	_, err := svc.PlaceOrder(domain.Delivery{}, domain.Payment{})
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestPlaceOrder_SnapshotsCartAndTotals(t *testing.T) {
	svc, c, v, _ := setupService(t)

	c.AddItem(phone, 2, nil)  // 500
	c.AddItem(laptop, 1, nil) // 500
	_, err := v.Apply("WELCOME10")
	require.NoError(t, err)

	o, err := svc.PlaceOrder(
		domain.Delivery{Type: "courier", City: "Москва", Address: "ул. Ленина, 15"},
		domain.Payment{Method: "card"},
	)
	require.NoError(t, err)

	assert.NotEmpty(t, o.ID)
	assert.Equal(t, domain.OrderStatusProcessing, o.Status)
	assert.Len(t, o.Items, 2)
	assert.Equal(t, 1000.0, o.Totals.Subtotal)
	assert.Equal(t, 100.0, o.Totals.Discount)
	assert.Equal(t, 500.0, o.Totals.Shipping)
	assert.Equal(t, 1400.0, o.Totals.Total)
	assert.False(t, o.CreatedAt.IsZero())
}

func TestPlaceOrder_ClearsCartAndCouponAfterCommit(t *testing.T) {
	svc, c, v, store := setupService(t)

	c.AddItem(phone, 1, nil)
	_, err := v.Apply("FREESHIP")
	require.NoError(t, err)

	o, err := svc.PlaceOrder(domain.Delivery{}, domain.Payment{})
	require.NoError(t, err)

	assert.Equal(t, 0, c.Len())
	assert.Nil(t, v.Applied())

	// The order made it into history before the cart was cleared.
	stored, err := store.Get(o.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Items, 1)
}

// Clearing or mutating the live cart after checkout must not change a
// previously created order.
func TestPlaceOrder_OrderIsolatedFromLaterCartMutation(t *testing.T) {
	svc, c, _, store := setupService(t)

	c.AddItem(phone, 2, domain.SelectedOptions{"color": "black"})
	c.AddItem(laptop, 1, nil)

	o, err := svc.PlaceOrder(domain.Delivery{}, domain.Payment{})
	require.NoError(t, err)
	wantTotal := o.Totals.Total
	require.Len(t, o.Items, 2)

	// Refill and clear the live cart, and mutate the returned order too.
	c.AddItem(phone, 9, nil)
	c.Clear()
	o.Items[0].Quantity = 99

	stored, err := store.Get(o.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Items, 2)
	assert.Equal(t, 2, stored.Items[0].Quantity)
	assert.Equal(t, wantTotal, stored.Totals.Total)
}

func TestPlaceOrder_UniqueIDs(t *testing.T) {
	svc, c, _, _ := setupService(t)

	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		c.AddItem(phone, 1, nil)
		o, err := svc.PlaceOrder(domain.Delivery{}, domain.Payment{})
		require.NoError(t, err)
		assert.False(t, seen[o.ID], "duplicate order id %s", o.ID)
		seen[o.ID] = true
	}
}

func TestPlaceOrder_TotalsComputedAgainstSnapshotNotLiveCart(t *testing.T) {
	svc, c, _, store := setupService(t)

	c.AddItem(phone, 1, nil)
	o, err := svc.PlaceOrder(domain.Delivery{}, domain.Payment{})
	require.NoError(t, err)

	// A zeroed order (empty items, shipping-only total) would mean totals
	// were computed after the clear.
	stored, err := store.Get(o.ID)
	require.NoError(t, err)
	assert.Equal(t, 250.0, stored.Totals.Subtotal)
	assert.Equal(t, 750.0, stored.Totals.Total)
	assert.NotEmpty(t, stored.Items)
}
