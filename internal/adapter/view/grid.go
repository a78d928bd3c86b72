package view

import (
	"fmt"
	"strings"

	"github.com/zafahi/tralashop/internal/core/domain"
	"github.com/zafahi/tralashop/internal/core/port"
	"github.com/zafahi/tralashop/pkg/webfmt"
)

// ProductGrid renders product cards into the grid container.
type ProductGrid struct {
	surface port.RenderSurface

	// AddToCart and QuickView are invoked when the user activates the
	// matching card control.
	AddToCart func(productID int)
	QuickView func(productID int)
}

func NewProductGrid(surface port.RenderSurface) *ProductGrid {
	return &ProductGrid{surface: surface}
}

// Render replaces the grid content with cards for the given products.
func (g *ProductGrid) Render(products []domain.Product) {
	if len(products) == 0 {
		g.surface.SetContent(ProductsGridID,
			`<div class="no-products">No products found matching your criteria.</div>`)
		return
	}

	var b strings.Builder
	for _, p := range products {
		b.WriteString(Card(p))
	}
	g.surface.SetContent(ProductsGridID, b.String())
}

// Card builds the markup for a single product card.
func Card(p domain.Product) string {
	var b strings.Builder

	fmt.Fprintf(&b, `<div class="product-card" data-product-id="%d">`, p.ID)

	if d := webfmt.Discount(p.OriginalPrice, p.Price); d > 0 {
		fmt.Fprintf(&b, `<div class="product-badge sale">-%d%%</div>`, d)
	}
	if p.HasTag(domain.TagNew) {
		b.WriteString(`<div class="product-badge new">New</div>`)
	}
	if !p.InStock {
		b.WriteString(`<div class="product-badge out-of-stock">Out of Stock</div>`)
	}

	fmt.Fprintf(&b, `<div class="product-image"><img src="%s" alt="%s" loading="lazy">`,
		p.Image, p.Name)
	b.WriteString(`<div class="product-overlay">`)
	fmt.Fprintf(&b, `<button class="btn btn-primary add-to-cart" data-product-id="%d"%s>%s</button>`,
		p.ID, disabledAttr(p), cartLabel(p))
	fmt.Fprintf(&b, `<button class="btn btn-outline quick-view" data-product-id="%d">Quick View</button>`,
		p.ID)
	b.WriteString(`</div></div>`)

	b.WriteString(`<div class="product-info">`)
	fmt.Fprintf(&b, `<div class="product-category">%s</div>`, webfmt.Category(p.Category))
	fmt.Fprintf(&b, `<h3 class="product-name">%s</h3>`, p.Name)
	fmt.Fprintf(&b, `<div class="product-rating">%s<span class="rating-text">%.1f (%d reviews)</span></div>`,
		webfmt.Stars(p.Rating), p.Rating, p.Reviews)

	b.WriteString(`<div class="product-specs">`)
	for _, spec := range firstSpecs(p.Specifications, 2) {
		fmt.Fprintf(&b, `<span class="spec-tag">%s</span>`, spec)
	}
	b.WriteString(`</div>`)

	b.WriteString(priceMarkup(p))
	b.WriteString(`</div></div>`)

	return b.String()
}

func priceMarkup(p domain.Product) string {
	var b strings.Builder
	b.WriteString(`<div class="product-price">`)
	fmt.Fprintf(&b, `<span class="current-price">%s</span>`, webfmt.Currency(p.Price))
	if p.OriginalPrice > 0 {
		fmt.Fprintf(&b, `<span class="original-price">%s</span>`, webfmt.Currency(p.OriginalPrice))
	}
	b.WriteString(`</div>`)
	return b.String()
}

func cartLabel(p domain.Product) string {
	if !p.InStock {
		return "Out of Stock"
	}
	return "Add to Cart"
}

func disabledAttr(p domain.Product) string {
	if !p.InStock {
		return " disabled"
	}
	return ""
}

func firstSpecs(specs []string, n int) []string {
	if len(specs) > n {
		return specs[:n]
	}
	return specs
}
