package catalog

import (
	"errors"

	"github.com/ADSorokin/ShopMaster/internal/domain"
)

// ErrProductNotFound is returned when a product id is unknown.
var ErrProductNotFound = errors.New("product not found")

// Filter narrows a product listing. Zero values mean "no constraint";
// MaxPrice of 0 means unbounded.
type Filter struct {
	Category  string
	Search    string
	Brand     string
	MinPrice  float64
	MaxPrice  float64
	MinRating float64
	Language  domain.Language
}

// Catalog supplies read-only product reference data to the rest of the app.
type Catalog interface {
	// Get returns the product with the given id.
	Get(id int64) (domain.Product, error)

	// List returns the products matching the filter, in catalog order.
	List(f Filter) []domain.Product

	// Categories returns the browsing categories.
	Categories() []domain.Category

	// PickupPoints returns the available order pickup locations.
	PickupPoints() []domain.PickupPoint
}
