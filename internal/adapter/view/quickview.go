package view

import (
	"fmt"
	"strings"

	"github.com/zafahi/tralashop/internal/core/domain"
	"github.com/zafahi/tralashop/internal/core/port"
	"github.com/zafahi/tralashop/pkg/webfmt"
)

// QuickView renders the product detail overlay.
type QuickView struct {
	surface port.RenderSurface

	AddToCart func(productID int)
}

func NewQuickView(surface port.RenderSurface) *QuickView {
	return &QuickView{surface: surface}
}

// Show fills and activates the overlay for the given product.
func (v *QuickView) Show(p domain.Product) {
	var b strings.Builder

	b.WriteString(`<div class="quick-view-content">`)
	fmt.Fprintf(&b, `<div class="quick-view-image"><img src="%s" alt="%s"></div>`, p.Image, p.Name)
	b.WriteString(`<div class="quick-view-info">`)
	fmt.Fprintf(&b, `<div class="product-category">%s</div>`, webfmt.Category(p.Category))
	fmt.Fprintf(&b, `<h2>%s</h2>`, p.Name)
	fmt.Fprintf(&b, `<div class="product-rating">%s<span>%.1f (%d reviews)</span></div>`,
		webfmt.Stars(p.Rating), p.Rating, p.Reviews)
	fmt.Fprintf(&b, `<p class="product-description">%s</p>`, p.Description)

	b.WriteString(`<div class="product-specs"><h4>Specifications:</h4>`)
	for _, spec := range p.Specifications {
		fmt.Fprintf(&b, `<span class="spec-tag">%s</span>`, spec)
	}
	b.WriteString(`</div>`)

	b.WriteString(priceMarkup(p))
	fmt.Fprintf(&b, `<button class="btn btn-primary btn-block add-to-cart-modal" data-product-id="%d"%s>%s</button>`,
		p.ID, disabledAttr(p), cartLabel(p))
	b.WriteString(`</div></div>`)

	v.surface.SetContent(QuickViewID, b.String())
	v.surface.AddClass(QuickViewID, classActive)
}

func (v *QuickView) Close() {
	v.surface.RemoveClass(QuickViewID, classActive)
}

func (v *QuickView) IsOpen() bool {
	return v.surface.HasClass(QuickViewID, classActive)
}
