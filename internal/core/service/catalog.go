package service

import (
	"strings"
	"sync"

	"github.com/zafahi/tralashop/internal/core/domain"
)

// loadMoreOffset is the id offset applied to cloned products. Repeated
// LoadMore calls can mint colliding ids across calls; the original behaves
// the same way and callers must not rely on global uniqueness after reloads.
const loadMoreOffset = 1000

// Catalog holds the product list and the currently active filtered subset.
// It is a plain in-memory container: nothing here touches persistence.
// The mutex makes it safe for concurrent use: delayed load-more and debounced
// search complete on timer goroutines, not on the caller's.
type Catalog struct {
	mu       sync.Mutex
	products []domain.Product
	filtered []domain.Product
	current  string
}

func NewCatalog() *Catalog {
	return &Catalog{current: "all"}
}

// Initialize populates the fixed seed set. Calling it again replaces the
// list wholesale, it never merges.
func (c *Catalog) Initialize() []domain.Product {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.products = seedProducts()
	c.filtered = append([]domain.Product(nil), c.products...)
	c.current = "all"
	return c.products
}

func (c *Catalog) All() []domain.Product {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.products
}

// ByID returns the product with the given id, linear scan, no error on miss.
func (c *Catalog) ByID(id int) (domain.Product, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

// Filter replaces the remembered filtered list. "all" resets to the full
// catalog; a known tag value filters by tag membership; anything else is
// treated as a category slug and matched by exact equality.
func (c *Catalog) Filter(criterion string) []domain.Product {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.current = criterion

	if criterion == "all" {
		c.filtered = append([]domain.Product(nil), c.products...)
		return c.filtered
	}

	byTag := criterion == domain.TagNew ||
		criterion == domain.TagSale ||
		criterion == domain.TagTrending

	var filtered []domain.Product
	for _, p := range c.products {
		if byTag && p.HasTag(criterion) || !byTag && p.Category == criterion {
			filtered = append(filtered, p)
		}
	}
	c.filtered = filtered
	return c.filtered
}

// CurrentFilter returns the criterion of the last Filter call.
func (c *Catalog) CurrentFilter() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Filtered returns the remembered filtered list.
func (c *Catalog) Filtered() []domain.Product {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filtered
}

// Search matches the query case-insensitively against name, category,
// description and every specification entry; any field match qualifies.
//
// Queries shorter than 2 characters after trimming return the previously
// filtered list unchanged. That keeps the grid steady while the user is
// still typing and is deliberate, not a fallback to the full catalog.
func (c *Catalog) Search(query string) []domain.Product {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(strings.TrimSpace(query)) < 2 {
		return c.filtered
	}

	q := strings.ToLower(query)
	var found []domain.Product
	for _, p := range c.products {
		if matchesQuery(p, q) {
			found = append(found, p)
		}
	}
	return found
}

func matchesQuery(p domain.Product, q string) bool {
	if strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Category), q) ||
		strings.Contains(strings.ToLower(p.Description), q) {
		return true
	}
	for _, spec := range p.Specifications {
		if strings.Contains(strings.ToLower(spec), q) {
			return true
		}
	}
	return false
}

// LoadMore clones the first count products with offset ids and a suffixed
// name, appends them and resets the filtered list to the grown catalog.
// It returns only the newly appended products.
func (c *Catalog) LoadMore(count int) []domain.Product {
	c.mu.Lock()
	defer c.mu.Unlock()

	if count > len(c.products) {
		count = len(c.products)
	}
	if count <= 0 {
		return nil
	}

	extended := make([]domain.Product, 0, count)
	for i, p := range c.products[:count] {
		p.ID += loadMoreOffset + i
		p.Name += " (Extended)"
		extended = append(extended, p)
	}

	c.products = append(c.products, extended...)
	c.filtered = append([]domain.Product(nil), c.products...)
	return extended
}

func seedProducts() []domain.Product {
	return []domain.Product{
		{
			ID:             1,
			Name:           "AMD Ryzen 9 7950X",
			Category:       domain.CategoryProcessors,
			Price:          699.99,
			OriginalPrice:  799.99,
			Image:          "https://images.unsplash.com/photo-1591799264318-7e6ef8ddb7ea?w=400&h=300&fit=crop",
			Rating:         4.9,
			Reviews:        1247,
			Tags:           []string{domain.TagTrending, domain.TagSale},
			Specifications: []string{"16 Cores", "32 Threads", "4.5GHz Base"},
			InStock:        true,
			Description:    "Ultimate performance processor for gaming and content creation",
		},
		{
			ID:             2,
			Name:           "NVIDIA RTX 4090",
			Category:       domain.CategoryGraphics,
			Price:          1599.99,
			Image:          "https://images.unsplash.com/photo-1587202372634-32705e3bf49c?w=400&h=300&fit=crop",
			Rating:         4.8,
			Reviews:        892,
			Tags:           []string{domain.TagNew, domain.TagTrending},
			Specifications: []string{"24GB GDDR6X", "Ada Lovelace", "Ray Tracing"},
			InStock:        true,
			Description:    "Flagship graphics card for 4K gaming and AI workloads",
		},
		{
			ID:             3,
			Name:           "Samsung Odyssey G9",
			Category:       domain.CategoryMonitors,
			Price:          1299.99,
			OriginalPrice:  1499.99,
			Image:          "https://images.unsplash.com/photo-1527443224154-c4a3942d3acf?w=400&h=300&fit=crop",
			Rating:         4.7,
			Reviews:        634,
			Tags:           []string{domain.TagSale},
			Specifications: []string{"49\" Curved", "240Hz", "1ms Response"},
			InStock:        true,
			Description:    "Ultra-wide curved gaming monitor with HDR support",
		},
		{
			ID:             4,
			Name:           "Corsair K95 RGB",
			Category:       domain.CategoryPeripherals,
			Price:          199.99,
			OriginalPrice:  249.99,
			Image:          "https://images.unsplash.com/photo-1541140532154-b024d705b90a?w=400&h=300&fit=crop",
			Rating:         4.6,
			Reviews:        1456,
			Tags:           []string{domain.TagSale},
			Specifications: []string{"Mechanical", "RGB Lighting", "Macro Keys"},
			InStock:        true,
			Description:    "Premium mechanical gaming keyboard with RGB",
		},
		{
			ID:             5,
			Name:           "Samsung 980 PRO 2TB",
			Category:       domain.CategoryStorage,
			Price:          199.99,
			Image:          "https://images.unsplash.com/photo-1597872200969-2b65d56bd16b?w=400&h=300&fit=crop",
			Rating:         4.8,
			Reviews:        2341,
			Tags:           []string{domain.TagTrending},
			Specifications: []string{"NVMe SSD", "7000MB/s Read", "PCIe 4.0"},
			InStock:        true,
			Description:    "High-speed NVMe SSD for ultimate performance",
		},
		{
			ID:             6,
			Name:           "G.Skill Trident Z5 32GB",
			Category:       domain.CategoryMemory,
			Price:          299.99,
			Image:          "https://images.unsplash.com/photo-1591488320449-011701bb6704?w=400&h=300&fit=crop",
			Rating:         4.7,
			Reviews:        789,
			Tags:           []string{domain.TagNew},
			Specifications: []string{"DDR5-6000", "32GB Kit", "RGB Lighting"},
			InStock:        true,
			Description:    "High-performance DDR5 memory with RGB lighting",
		},
		{
			ID:             7,
			Name:           "Intel Core i9-13900K",
			Category:       domain.CategoryProcessors,
			Price:          589.99,
			OriginalPrice:  649.99,
			Image:          "https://images.unsplash.com/photo-1591799264318-7e6ef8ddb7ea?w=400&h=300&fit=crop",
			Rating:         4.8,
			Reviews:        1123,
			Tags:           []string{domain.TagSale, domain.TagTrending},
			Specifications: []string{"24 Cores", "32 Threads", "5.8GHz Boost"},
			InStock:        true,
			Description:    "High-performance processor for gaming and productivity",
		},
		{
			ID:             8,
			Name:           "ASUS ROG Swift PG32UQ",
			Category:       domain.CategoryMonitors,
			Price:          799.99,
			Image:          "https://images.unsplash.com/photo-1527443224154-c4a3942d3acf?w=400&h=300&fit=crop",
			Rating:         4.6,
			Reviews:        445,
			Tags:           []string{domain.TagNew},
			Specifications: []string{"32\" 4K", "144Hz", "HDR400"},
			InStock:        true,
			Description:    "Professional 4K gaming monitor with high refresh rate",
		},
	}
}
