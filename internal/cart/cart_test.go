package cart

import (
	"testing"

	"github.com/ADSorokin/ShopMaster/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var phone = domain.Product{
	ID:       1,
	Name:     domain.Localized{RU: "Смартфон Galaxy S23", EN: "Galaxy S23 Smartphone"},
	Price:    79990,
	Discount: 5,
}

var laptop = domain.Product{
	ID:    2,
	Name:  domain.Localized{RU: "Ноутбук MacBook Pro", EN: "MacBook Pro Laptop"},
	Price: 159990,
}

func TestAddItem_MergesIdenticalOptions(t *testing.T) {
	c := New()

	c.AddItem(phone, 1, domain.SelectedOptions{"color": "black"})
	c.AddItem(phone, 1, domain.SelectedOptions{"color": "black"})

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestAddItem_OptionOrderDoesNotSplitItems(t *testing.T) {
	c := New()

	// Same pairs, different insertion order. Structural equality must merge.
	a := domain.SelectedOptions{"color": "black", "size": "6.1"}
	b := domain.SelectedOptions{"size": "6.1", "color": "black"}
	c.AddItem(phone, 1, a)
	c.AddItem(phone, 1, b)

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestAddItem_DistinctOptionsProduceDistinctItems(t *testing.T) {
	c := New()

	c.AddItem(phone, 1, domain.SelectedOptions{"color": "black"})
	c.AddItem(phone, 1, domain.SelectedOptions{"color": "white"})

	assert.Equal(t, 2, c.Len())
}

func TestAddItem_CapturesDiscountedPriceOnce(t *testing.T) {
	c := New()

	c.AddItem(phone, 1, nil)
	items := c.Items()
	require.Len(t, items, 1)
	assert.InDelta(t, 79990*0.95, items[0].FinalPrice, 1e-9)

	// A later catalog price change must not affect the captured price.
	repriced := phone
	repriced.Price = 99990
	c.AddItem(repriced, 1, nil)

	items = c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.InDelta(t, 79990*0.95, items[0].FinalPrice, 1e-9)
}

func TestAddItem_EmptyAndNilOptionsAreEquivalent(t *testing.T) {
	c := New()

	c.AddItem(laptop, 1, nil)
	c.AddItem(laptop, 1, domain.SelectedOptions{})

	assert.Equal(t, 1, c.Len())
}

func TestAddItem_QuantityBelowOneNormalized(t *testing.T) {
	c := New()

	c.AddItem(laptop, 0, nil)
	c.AddItem(laptop, -3, nil)

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestUpdateQuantity_SetsQuantity(t *testing.T) {
	c := New()
	c.AddItem(phone, 1, domain.SelectedOptions{"color": "black"})

	err := c.UpdateQuantity(phone.ID, 5, domain.SelectedOptions{"color": "black"})
	require.NoError(t, err)

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestUpdateQuantity_ZeroRemovesItem(t *testing.T) {
	c := New()
	c.AddItem(phone, 3, domain.SelectedOptions{"color": "black"})

	err := c.UpdateQuantity(phone.ID, 0, domain.SelectedOptions{"color": "black"})
	require.NoError(t, err)

	assert.Equal(t, 0, c.Len())
}

func TestUpdateQuantity_NegativeRejected(t *testing.T) {
	c := New()
	c.AddItem(phone, 3, nil)

	err := c.UpdateQuantity(phone.ID, -1, nil)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	// Cart unchanged.
	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
}

func TestUpdateQuantity_AbsentItemIsNoOp(t *testing.T) {
	c := New()
	c.AddItem(phone, 1, nil)

	err := c.UpdateQuantity(999, 5, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())
}

func TestRemoveItem_Idempotent(t *testing.T) {
	c := New()
	c.AddItem(phone, 1, domain.SelectedOptions{"color": "black"})

	c.RemoveItem(phone.ID, domain.SelectedOptions{"color": "white"})
	assert.Equal(t, 1, c.Len())

	c.RemoveItem(phone.ID, domain.SelectedOptions{"color": "black"})
	assert.Equal(t, 0, c.Len())

	c.RemoveItem(phone.ID, domain.SelectedOptions{"color": "black"})
	assert.Equal(t, 0, c.Len())
}

func TestItems_ReturnsIndependentCopy(t *testing.T) {
	c := New()
	c.AddItem(phone, 1, domain.SelectedOptions{"color": "black"})

	items := c.Items()
	items[0].Quantity = 99
	items[0].SelectedOptions["color"] = "red"

	fresh := c.Items()
	require.Len(t, fresh, 1)
	assert.Equal(t, 1, fresh[0].Quantity)
	assert.Equal(t, "black", fresh[0].SelectedOptions["color"])
}

func TestClear_EmptiesCart(t *testing.T) {
	c := New()
	c.AddItem(phone, 1, nil)
	c.AddItem(laptop, 2, nil)

	c.Clear()
	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.Items())
}
