package domain

// Category slugs of the fixed catalog taxonomy.
const (
	CategoryProcessors  = "processors"
	CategoryGraphics    = "graphics"
	CategoryMonitors    = "monitors"
	CategoryPeripherals = "peripherals"
	CategoryStorage     = "storage"
	CategoryMemory      = "memory"
)

// Tag values with dedicated filter semantics.
const (
	TagNew      = "new"
	TagSale     = "sale"
	TagTrending = "trending"
)

type Product struct {
	ID             int      `json:"id"`
	Name           string   `json:"name"`
	Category       string   `json:"category"`
	Price          float64  `json:"price"`
	OriginalPrice  float64  `json:"originalPrice,omitempty"`
	Image          string   `json:"image"`
	Rating         float64  `json:"rating"`
	Reviews        int      `json:"reviews"`
	Tags           []string `json:"tags"`
	Specifications []string `json:"specifications"`
	InStock        bool     `json:"inStock"`
	Description    string   `json:"description"`
}

// HasTag reports whether the product carries the given tag.
func (p Product) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// OnSale reports whether the product has a struck-through original price.
// OriginalPrice zero means the product never had one.
func (p Product) OnSale() bool {
	return p.OriginalPrice > p.Price
}
