package view

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zafahi/tralashop/internal/core/domain"
	"github.com/zafahi/tralashop/internal/core/port"
	"github.com/zafahi/tralashop/internal/core/service"
	"github.com/zafahi/tralashop/pkg/webfmt"
)

// CartSidebar renders the cart panel: count badge, line items with quantity
// controls, and the running total. Quantity and remove controls mutate the
// cart directly; checkout is delegated to the wired handler.
type CartSidebar struct {
	surface  port.RenderSurface
	cart     *service.Cart
	notifier *service.Notifier

	// Checkout receives the cart snapshot when the user requests checkout
	// on a non-empty cart.
	Checkout func(entries []domain.CartEntry)
}

func NewCartSidebar(surface port.RenderSurface, cart *service.Cart, notifier *service.Notifier) *CartSidebar {
	s := &CartSidebar{surface: surface, cart: cart, notifier: notifier}
	s.Update()
	return s
}

func (s *CartSidebar) Toggle() {
	if s.IsOpen() {
		s.Close()
		return
	}
	s.Open()
}

func (s *CartSidebar) Open() {
	s.surface.AddClass(CartSidebarID, classActive)
}

func (s *CartSidebar) Close() {
	s.surface.RemoveClass(CartSidebarID, classActive)
}

func (s *CartSidebar) IsOpen() bool {
	return s.surface.HasClass(CartSidebarID, classActive)
}

// Update re-renders badge, content and total from the current cart state.
func (s *CartSidebar) Update() {
	s.surface.SetText(CartCountID, strconv.Itoa(s.cart.TotalItems()))
	s.surface.SetText(CartTotalID, fmt.Sprintf("%.2f", s.cart.TotalPrice()))
	s.surface.SetContent(CartContentID, cartContent(s.cart.Entries()))
}

// IncreaseQuantity bumps the entry's quantity by one.
func (s *CartSidebar) IncreaseQuantity(productID int) {
	if e, ok := s.cart.Entry(productID); ok {
		s.cart.SetQuantity(productID, e.Quantity+1)
		s.Update()
	}
}

// DecreaseQuantity lowers the entry's quantity by one; at one it removes
// the entry, via the cart's own zero-quantity rule.
func (s *CartSidebar) DecreaseQuantity(productID int) {
	if e, ok := s.cart.Entry(productID); ok {
		s.cart.SetQuantity(productID, e.Quantity-1)
		s.Update()
	}
}

// RemoveItem drops the entry and notifies.
func (s *CartSidebar) RemoveItem(productID int) {
	if s.cart.Remove(productID) {
		s.Update()
		s.notifier.Info("Item removed from cart")
	}
}

// HandleCheckout rejects an empty cart with an error toast, otherwise hands
// the cart snapshot to the checkout handler.
func (s *CartSidebar) HandleCheckout() {
	if s.cart.IsEmpty() {
		s.notifier.Error("Your cart is empty")
		return
	}
	if s.Checkout != nil {
		s.Checkout(s.cart.Entries())
	}
}

func cartContent(entries []domain.CartEntry) string {
	if len(entries) == 0 {
		return `<div class="empty-cart"><p>Your cart is empty</p></div>`
	}

	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, `<div class="cart-item" data-product-id="%d">`, e.ID)
		fmt.Fprintf(&b, `<div class="cart-item-image"><img src="%s" alt="%s"></div>`, e.Image, e.Name)
		b.WriteString(`<div class="cart-item-info">`)
		fmt.Fprintf(&b, `<h4>%s</h4>`, e.Name)
		fmt.Fprintf(&b, `<div class="cart-item-price">%s</div>`, webfmt.Currency(e.Price))
		b.WriteString(`<div class="cart-item-controls">`)
		fmt.Fprintf(&b, `<button class="quantity-btn minus" data-product-id="%d">-</button>`, e.ID)
		fmt.Fprintf(&b, `<span class="quantity">%d</span>`, e.Quantity)
		fmt.Fprintf(&b, `<button class="quantity-btn plus" data-product-id="%d">+</button>`, e.ID)
		b.WriteString(`</div></div>`)
		fmt.Fprintf(&b, `<button class="remove-item" data-product-id="%d">Remove</button>`, e.ID)
		b.WriteString(`</div>`)
	}
	return b.String()
}
