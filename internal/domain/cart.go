package domain

import "maps"

// SelectedOptions maps an option name (color, size) to the chosen value.
// Two option sets are equal when they hold the same key/value pairs,
// regardless of insertion order. A nil map and an empty map are equivalent.
type SelectedOptions map[string]string

// Equal reports structural equality of two option sets.
func (o SelectedOptions) Equal(other SelectedOptions) bool {
	return maps.Equal(o, other)
}

// Clone returns an independent copy. Cloning nil yields nil.
func (o SelectedOptions) Clone() SelectedOptions {
	if o == nil {
		return nil
	}
	return maps.Clone(o)
}

// LineItem is one distinct (product, options) entry in a cart.
// FinalPrice is captured once when the item is first added and is not
// recomputed if the catalog price changes afterwards.
type LineItem struct {
	ProductID       int64           `json:"product_id"`
	Name            Localized       `json:"name"`
	SelectedOptions SelectedOptions `json:"selected_options,omitempty"`
	Quantity        int             `json:"quantity"`
	FinalPrice      float64         `json:"final_price"`
}

// Matches reports whether this line item is the same cart entry as the
// given (productID, options) pair.
func (li LineItem) Matches(productID int64, opts SelectedOptions) bool {
	return li.ProductID == productID && li.SelectedOptions.Equal(opts)
}

// Clone returns a copy whose options map does not alias the original.
func (li LineItem) Clone() LineItem {
	out := li
	out.SelectedOptions = li.SelectedOptions.Clone()
	return out
}
