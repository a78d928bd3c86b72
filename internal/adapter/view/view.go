// Package view renders storefront state into markup on an injected
// port.RenderSurface. Each view exposes its user actions as plain handler
// fields, so the core stays testable without any real rendering surface:
// whatever drives the UI translates input into calls on these views, and
// the views call back into whatever the app wired in.
package view

// Container and target ids on the rendering surface.
const (
	ProductsGridID  = "products-grid"
	CartSidebarID   = "cart-sidebar"
	CartContentID   = "cart-content"
	CartCountID     = "cart-count"
	CartTotalID     = "cart-total"
	LoginModalID    = "login-modal"
	QuickViewID     = "quick-view-modal"
	CheckoutModalID = "checkout-modal"
	ToastID         = "toast"
	SuggestionsID   = "search-suggestions"
)

const classActive = "active"
