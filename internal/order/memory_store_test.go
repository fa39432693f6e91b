package order

import (
	"testing"
	"time"

	"github.com/ADSorokin/ShopMaster/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOrder(id string) domain.Order {
	return domain.Order{
		ID: id,
		Items: []domain.LineItem{
			{ProductID: 1, Quantity: 2, FinalPrice: 250, SelectedOptions: domain.SelectedOptions{"color": "black"}},
		},
		Totals:    domain.Totals{Subtotal: 500, Shipping: 500, Total: 1000},
		Status:    domain.OrderStatusProcessing,
		CreatedAt: time.Now(),
	}
}

func TestMemoryStore_AddAndGet(t *testing.T) {
	store := NewMemoryStore()

	require.NoError(t, store.Add(testOrder("ord-1")))

	got, err := store.Get("ord-1")
	require.NoError(t, err)
	assert.Equal(t, "ord-1", got.ID)
	assert.Equal(t, domain.OrderStatusProcessing, got.Status)
	assert.Len(t, got.Items, 1)
}

func TestMemoryStore_GetUnknown(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Get("missing")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestMemoryStore_ListNewestFirst(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Add(testOrder("ord-1")))
	require.NoError(t, store.Add(testOrder("ord-2")))
	require.NoError(t, store.Add(testOrder("ord-3")))

	orders := store.List()
	require.Len(t, orders, 3)
	assert.Equal(t, "ord-3", orders[0].ID)
	assert.Equal(t, "ord-1", orders[2].ID)
}

func TestMemoryStore_StoredOrderIsIsolatedFromCaller(t *testing.T) {
	store := NewMemoryStore()

	o := testOrder("ord-1")
	require.NoError(t, store.Add(o))

	// Mutate the caller's copy after committing.
	o.Items[0].Quantity = 99
	o.Items[0].SelectedOptions["color"] = "red"

	got, err := store.Get("ord-1")
	require.NoError(t, err)
	assert.Equal(t, 2, got.Items[0].Quantity)
	assert.Equal(t, "black", got.Items[0].SelectedOptions["color"])
}

func TestMemoryStore_ReturnedOrderIsACopy(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Add(testOrder("ord-1")))

	got, err := store.Get("ord-1")
	require.NoError(t, err)
	got.Items[0].Quantity = 99

	again, err := store.Get("ord-1")
	require.NoError(t, err)
	assert.Equal(t, 2, again.Items[0].Quantity)
}

func TestMemoryStore_UpdateStatus_LegalTransitions(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Add(testOrder("ord-1")))

	require.NoError(t, store.UpdateStatus("ord-1", domain.OrderStatusShipped))
	require.NoError(t, store.UpdateStatus("ord-1", domain.OrderStatusCompleted))

	got, err := store.Get("ord-1")
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusCompleted, got.Status)
}

func TestMemoryStore_UpdateStatus_CancelFromShipped(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Add(testOrder("ord-1")))

	require.NoError(t, store.UpdateStatus("ord-1", domain.OrderStatusShipped))
	require.NoError(t, store.UpdateStatus("ord-1", domain.OrderStatusCancelled))
}

func TestMemoryStore_UpdateStatus_IllegalTransitions(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Add(testOrder("ord-1")))

	// processing -> completed skips shipping
	err := store.UpdateStatus("ord-1", domain.OrderStatusCompleted)
	assert.ErrorIs(t, err, ErrIllegalTransition)

	// terminal states reject everything
	require.NoError(t, store.UpdateStatus("ord-1", domain.OrderStatusCancelled))
	err = store.UpdateStatus("ord-1", domain.OrderStatusShipped)
	assert.ErrorIs(t, err, ErrIllegalTransition)
}

func TestMemoryStore_UpdateStatus_Unknown(t *testing.T) {
	store := NewMemoryStore()

	err := store.UpdateStatus("missing", domain.OrderStatusShipped)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}
