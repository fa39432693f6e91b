package cart

import (
	"errors"
	"sync"

	"github.com/ADSorokin/ShopMaster/internal/domain"
)

// ErrInvalidQuantity is returned when a negative quantity is requested.
// Zero is not an error: updating to zero removes the item.
var ErrInvalidQuantity = errors.New("quantity must not be negative")

// Cart maintains the line items of the active shopping session.
// A line item's identity is the (productID, selectedOptions) pair; adding
// the same pair again merges into the existing item's quantity.
type Cart struct {
	mu    sync.Mutex
	items []domain.LineItem
}

func New() *Cart {
	return &Cart{}
}

// AddItem adds quantity units of the product with the given options.
// If a matching line item already exists its quantity is incremented and
// its captured FinalPrice is kept; otherwise a new line item is appended
// with FinalPrice computed from the product's current price and discount.
// Quantities below 1 are normalized to 1. AddItem never fails.
func (c *Cart) AddItem(p domain.Product, quantity int, opts domain.SelectedOptions) {
	if quantity < 1 {
		quantity = 1
	}
	if len(opts) == 0 {
		// Treat malformed/empty option sets as the empty equivalence key.
		opts = nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].Matches(p.ID, opts) {
			c.items[i].Quantity += quantity
			return
		}
	}

	c.items = append(c.items, domain.LineItem{
		ProductID:       p.ID,
		Name:            p.Name,
		SelectedOptions: opts.Clone(),
		Quantity:        quantity,
		FinalPrice:      p.FinalPrice(),
	})
}

// UpdateQuantity sets the quantity of the matching line item. A quantity of
// zero removes the item. Negative quantities are rejected with
// ErrInvalidQuantity. Updating an absent item is a no-op.
func (c *Cart) UpdateQuantity(productID int64, quantity int, opts domain.SelectedOptions) error {
	if quantity < 0 {
		return ErrInvalidQuantity
	}
	if quantity == 0 {
		c.RemoveItem(productID, opts)
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].Matches(productID, normalize(opts)) {
			c.items[i].Quantity = quantity
			return nil
		}
	}
	return nil
}

// RemoveItem removes the matching line item. Removal is idempotent: removing
// an absent item leaves the cart unchanged.
func (c *Cart) RemoveItem(productID int64, opts domain.SelectedOptions) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := normalize(opts)
	for i := range c.items {
		if c.items[i].Matches(productID, key) {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Clear empties the cart. Any coupon the caller holds against this cart is
// stale afterwards and must be reset by the caller.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

// Items returns a deep copy of the current line items. Mutating the returned
// slice or its option maps never affects the cart.
func (c *Cart) Items() []domain.LineItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]domain.LineItem, len(c.items))
	for i, li := range c.items {
		items[i] = li.Clone()
	}
	return items
}

// Len returns the number of distinct line items.
func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

func normalize(opts domain.SelectedOptions) domain.SelectedOptions {
	if len(opts) == 0 {
		return nil
	}
	return opts
}
