package view_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zafahi/tralashop/internal/adapter/view"
	"github.com/zafahi/tralashop/internal/core/domain"
)

func TestCheckoutOverlay_Show(t *testing.T) {
	surface := newSurfaceRecorder()
	overlay := view.NewCheckoutOverlay(surface)

	overlay.Show([]domain.CartEntry{
		{Product: saleProduct(), Quantity: 2},
		{Product: domain.Product{ID: 9, Name: "Mousepad", Price: 19.99, InStock: true}, Quantity: 1},
	})

	assert.True(t, surface.HasClass(view.CheckoutModalID, "active"))

	markup := surface.content[view.CheckoutModalID]
	assert.Contains(t, markup, "<span>AMD Ryzen 9 7950X x 2</span><span>$1,399.98</span>")
	assert.Contains(t, markup, "<span>Mousepad x 1</span><span>$19.99</span>")
	assert.Contains(t, markup, "<strong>Total: $1,419.97</strong>")
	assert.Contains(t, markup, "No actual payment will be processed")
}

func TestCheckoutOverlay_ConfirmOrder(t *testing.T) {
	surface := newSurfaceRecorder()
	overlay := view.NewCheckoutOverlay(surface)
	overlay.Show([]domain.CartEntry{{Product: saleProduct(), Quantity: 1}})

	var completed bool
	overlay.Complete = func() { completed = true }

	overlay.ConfirmOrder()

	assert.True(t, completed)
	assert.False(t, surface.HasClass(view.CheckoutModalID, "active"))
}

func TestCheckoutOverlay_ConfirmWithoutHandler(t *testing.T) {
	surface := newSurfaceRecorder()
	overlay := view.NewCheckoutOverlay(surface)
	overlay.Show([]domain.CartEntry{{Product: saleProduct(), Quantity: 1}})

	assert.NotPanics(t, overlay.ConfirmOrder)
}
