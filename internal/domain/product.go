package domain

// Language selects which translation of a localized value is shown.
type Language string

const (
	LangRU Language = "ru"
	LangEN Language = "en"
)

// Localized holds the ru/en translations of a display string.
// Lookup tables only, no i18n framework.
type Localized struct {
	RU string `json:"ru"`
	EN string `json:"en"`
}

// In returns the translation for the given language, falling back to Russian.
func (l Localized) In(lang Language) string {
	if lang == LangEN {
		return l.EN
	}
	return l.RU
}

// Review is a customer review attached to a catalog product.
type Review struct {
	ID      int64  `json:"id"`
	User    string `json:"user"`
	Rating  float64 `json:"rating"`
	Comment string `json:"comment"`
	Date    string `json:"date"`
}

// Product is read-only catalog reference data. The cart only ever reads
// ID, Price and Discount from it; everything else is presentation.
type Product struct {
	ID             int64                           `json:"id"`
	Name           Localized                       `json:"name"`
	Description    Localized                       `json:"description"`
	Price          float64                         `json:"price"`
	Discount       float64                         `json:"discount"` // percentage, 0-100
	Category       string                          `json:"category"`
	Brand          string                          `json:"brand"`
	Rating         float64                         `json:"rating"`
	Stock          int                             `json:"stock"`
	Colors         []string                        `json:"colors,omitempty"`
	Sizes          []string                        `json:"sizes,omitempty"`
	Images         []string                        `json:"images,omitempty"`
	Specifications map[Language]map[string]string  `json:"specifications,omitempty"`
	Reviews        []Review                        `json:"reviews,omitempty"`
}

// FinalPrice is the unit price after the product's percentage discount.
func (p Product) FinalPrice() float64 {
	if p.Discount <= 0 {
		return p.Price
	}
	return p.Price * (1 - p.Discount/100)
}

// Category groups products for browsing.
type Category struct {
	ID   string    `json:"id"`
	Name Localized `json:"name"`
	Icon string    `json:"icon"`
}

// PickupPoint is a physical order pickup location.
type PickupPoint struct {
	ID          int64      `json:"id"`
	Name        Localized  `json:"name"`
	Address     string     `json:"address"`
	ClosingTime string     `json:"closing_time"`
	Coordinates [2]float64 `json:"coordinates"`
}
