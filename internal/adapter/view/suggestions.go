package view

import (
	"fmt"
	"strings"

	"github.com/zafahi/tralashop/internal/core/domain"
	"github.com/zafahi/tralashop/internal/core/port"
	"github.com/zafahi/tralashop/pkg/webfmt"
)

const maxSuggestions = 5

// Suggestions renders the search dropdown under the search input.
type Suggestions struct {
	surface port.RenderSurface

	// Picked fires when the user selects a suggestion.
	Picked func(productID int)
}

func NewSuggestions(surface port.RenderSurface) *Suggestions {
	return &Suggestions{surface: surface}
}

// Render shows the first few matches, or a no-results row.
func (s *Suggestions) Render(products []domain.Product) {
	if len(products) == 0 {
		s.surface.SetContent(SuggestionsID,
			`<div class="search-suggestion">No products found</div>`)
		return
	}

	if len(products) > maxSuggestions {
		products = products[:maxSuggestions]
	}

	var b strings.Builder
	for _, p := range products {
		fmt.Fprintf(&b,
			`<div class="search-suggestion" data-product-id="%d"><span>%s</span><span class="suggestion-price">%s</span></div>`,
			p.ID, p.Name, webfmt.Currency(p.Price))
	}
	s.surface.SetContent(SuggestionsID, b.String())
}

func (s *Suggestions) Clear() {
	s.surface.SetContent(SuggestionsID, "")
}
