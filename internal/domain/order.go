package domain

import "time"

type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// IsTerminal reports whether no further transitions are possible.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// CanTransitionTo reports whether next is a legal successor of s.
// Lifecycle: processing -> shipped -> completed, with cancelled reachable
// from processing or shipped.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	switch s {
	case OrderStatusProcessing:
		return next == OrderStatusShipped || next == OrderStatusCancelled
	case OrderStatusShipped:
		return next == OrderStatusCompleted || next == OrderStatusCancelled
	default:
		return false
	}
}

func (s OrderStatus) String() string {
	return string(s)
}

// Totals is the derived price breakdown for a cart + coupon combination.
// Values are numeric and unrounded; presentation rounding belongs to the
// price formatter.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Discount float64 `json:"discount"`
	Shipping float64 `json:"shipping"`
	Total    float64 `json:"total"`
}

// Delivery holds the delivery details collected during checkout.
type Delivery struct {
	Type    string `json:"type"` // courier or pickup
	Address string `json:"address"`
	City    string `json:"city"`
	Phone   string `json:"phone"`
}

// Payment holds the payment details collected during checkout.
// Nothing here is charged anywhere; there is no payment integration.
type Payment struct {
	Method     string `json:"method"` // card or cash
	CardNumber string `json:"card_number,omitempty"`
	Expiry     string `json:"expiry,omitempty"`
	CVV        string `json:"-"`
}

// Order is an immutable snapshot of a completed checkout. Items and Totals
// are copies taken at checkout time; mutating the live cart afterwards must
// never be observable through an order.
type Order struct {
	ID        string      `json:"id"`
	Items     []LineItem  `json:"items"`
	Totals    Totals      `json:"totals"`
	Delivery  Delivery    `json:"delivery"`
	Payment   Payment     `json:"payment"`
	Status    OrderStatus `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
}

// CloneItems returns a deep copy of the order's line items.
func (o Order) CloneItems() []LineItem {
	items := make([]LineItem, len(o.Items))
	for i, li := range o.Items {
		items[i] = li.Clone()
	}
	return items
}
