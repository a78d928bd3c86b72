package view

import (
	"fmt"
	"strings"

	"github.com/zafahi/tralashop/internal/core/domain"
	"github.com/zafahi/tralashop/internal/core/port"
	"github.com/zafahi/tralashop/pkg/webfmt"
)

// CheckoutOverlay renders the order summary and forwards order completion.
type CheckoutOverlay struct {
	surface port.RenderSurface

	// Complete fires when the user confirms the demo order.
	Complete func()
}

func NewCheckoutOverlay(surface port.RenderSurface) *CheckoutOverlay {
	return &CheckoutOverlay{surface: surface}
}

// Show fills and activates the overlay with a summary of the entries.
func (v *CheckoutOverlay) Show(entries []domain.CartEntry) {
	var b strings.Builder

	b.WriteString(`<div class="checkout-content"><h2>Checkout</h2>`)
	b.WriteString(`<div class="checkout-summary"><h3>Order Summary</h3>`)

	var total float64
	for _, e := range entries {
		total += e.LineTotal()
		fmt.Fprintf(&b, `<div class="checkout-item"><span>%s x %d</span><span>%s</span></div>`,
			e.Name, e.Quantity, webfmt.Currency(e.LineTotal()))
	}

	fmt.Fprintf(&b, `<div class="checkout-total"><strong>Total: %s</strong></div></div>`,
		webfmt.Currency(total))
	b.WriteString(`<div class="checkout-form">`)
	b.WriteString(`<p class="demo-notice">This is a demo. No actual payment will be processed.</p>`)
	b.WriteString(`<button class="btn btn-primary btn-block complete-order">Complete Order (Demo)</button>`)
	b.WriteString(`</div></div>`)

	v.surface.SetContent(CheckoutModalID, b.String())
	v.surface.AddClass(CheckoutModalID, classActive)
}

// ConfirmOrder is the complete-order control.
func (v *CheckoutOverlay) ConfirmOrder() {
	if v.Complete != nil {
		v.Complete()
	}
	v.Close()
}

func (v *CheckoutOverlay) Close() {
	v.surface.RemoveClass(CheckoutModalID, classActive)
}
