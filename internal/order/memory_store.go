package order

import (
	"sync"

	"github.com/ADSorokin/ShopMaster/internal/domain"
)

// MemoryStore implements Store with in-memory storage. Orders live only for
// the lifetime of the session; there is no persistence behind it.
type MemoryStore struct {
	mu     sync.RWMutex
	orders []domain.Order          // insertion order, oldest first
	byID   map[string]int          // order id -> index into orders
}

// NewMemoryStore creates a new in-memory order store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byID: make(map[string]int),
	}
}

// Add commits a new order. The stored copy owns its own line items, so later
// mutation of the caller's slice cannot reach it.
func (s *MemoryStore) Add(order domain.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := order
	stored.Items = order.CloneItems()
	s.byID[stored.ID] = len(s.orders)
	s.orders = append(s.orders, stored)
	return nil
}

// Get returns a copy of the order with the given id.
func (s *MemoryStore) Get(id string) (domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.byID[id]
	if !ok {
		return domain.Order{}, ErrOrderNotFound
	}
	return copyOrder(s.orders[i]), nil
}

// List returns copies of all orders, newest first.
func (s *MemoryStore) List() []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Order, 0, len(s.orders))
	for i := len(s.orders) - 1; i >= 0; i-- {
		out = append(out, copyOrder(s.orders[i]))
	}
	return out
}

// UpdateStatus moves an order along the processing -> shipped -> completed
// lifecycle (cancelled is reachable from processing or shipped). Only the
// status field ever changes; the snapshot stays frozen.
func (s *MemoryStore) UpdateStatus(id string, status domain.OrderStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.byID[id]
	if !ok {
		return ErrOrderNotFound
	}
	if !s.orders[i].Status.CanTransitionTo(status) {
		return ErrIllegalTransition
	}
	s.orders[i].Status = status
	return nil
}

func copyOrder(o domain.Order) domain.Order {
	out := o
	out.Items = o.CloneItems()
	return out
}
