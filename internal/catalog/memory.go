package catalog

import (
	"strings"
	"sync"

	"github.com/ADSorokin/ShopMaster/internal/domain"
)

// MemoryCatalog implements Catalog with in-memory reference data.
type MemoryCatalog struct {
	mu           sync.RWMutex
	products     []domain.Product
	byID         map[int64]int
	categories   []domain.Category
	pickupPoints []domain.PickupPoint
}

// NewMemoryCatalog creates a catalog over the given reference data.
func NewMemoryCatalog(products []domain.Product, categories []domain.Category, pickupPoints []domain.PickupPoint) *MemoryCatalog {
	c := &MemoryCatalog{
		products:     products,
		byID:         make(map[int64]int, len(products)),
		categories:   categories,
		pickupPoints: pickupPoints,
	}
	for i, p := range products {
		c.byID[p.ID] = i
	}
	return c
}

// Get returns the product with the given id.
func (c *MemoryCatalog) Get(id int64) (domain.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i, ok := c.byID[id]
	if !ok {
		return domain.Product{}, ErrProductNotFound
	}
	return c.products[i], nil
}

// List returns the products matching the filter.
func (c *MemoryCatalog) List(f Filter) []domain.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	lang := f.Language
	if lang == "" {
		lang = domain.LangRU
	}

	out := make([]domain.Product, 0, len(c.products))
	for _, p := range c.products {
		if !matches(p, f, lang) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matches(p domain.Product, f Filter, lang domain.Language) bool {
	if f.Category != "" && f.Category != "all" && p.Category != f.Category {
		return false
	}
	if f.Search != "" {
		term := strings.ToLower(f.Search)
		name := strings.ToLower(p.Name.In(lang))
		desc := strings.ToLower(p.Description.In(lang))
		brand := strings.ToLower(p.Brand)
		if !strings.Contains(name, term) && !strings.Contains(desc, term) && !strings.Contains(brand, term) {
			return false
		}
	}
	if p.Price < f.MinPrice {
		return false
	}
	if f.MaxPrice > 0 && p.Price > f.MaxPrice {
		return false
	}
	if f.Brand != "" && !strings.Contains(strings.ToLower(p.Brand), strings.ToLower(f.Brand)) {
		return false
	}
	if p.Rating < f.MinRating {
		return false
	}
	return true
}

// Categories returns the browsing categories.
func (c *MemoryCatalog) Categories() []domain.Category {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.categories
}

// PickupPoints returns the available pickup locations.
func (c *MemoryCatalog) PickupPoints() []domain.PickupPoint {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.pickupPoints
}
