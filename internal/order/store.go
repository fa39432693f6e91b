package order

import (
	"errors"

	"github.com/ADSorokin/ShopMaster/internal/domain"
)

// Common errors returned by the store
var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrIllegalTransition = errors.New("illegal order status transition")
)

// Store defines the interface for order history storage.
type Store interface {
	// Add commits a new order to the history.
	Add(order domain.Order) error

	// Get returns a copy of the order with the given id.
	Get(id string) (domain.Order, error)

	// List returns copies of all orders, newest first.
	List() []domain.Order

	// UpdateStatus moves an order to the given status. The transition must
	// be legal for the order's current status.
	UpdateStatus(id string, status domain.OrderStatus) error
}
