package service

import (
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/zafahi/tralashop/internal/core/domain"
	"github.com/zafahi/tralashop/internal/core/port"
)

var ErrCartEmpty = errors.New("checkout: cart is empty")

// Checkout turns the cart into a demo order. No payment is processed; the
// order is snapshotted into the persisted history and the cart is cleared.
type Checkout struct {
	cart      *Cart
	store     port.KeyValueStore
	ordersKey string
	now       func() time.Time
	newRef    func() string
}

func NewCheckout(cart *Cart, store port.KeyValueStore, ordersKey string) *Checkout {
	return &Checkout{
		cart:      cart,
		store:     store,
		ordersKey: ordersKey,
		now:       time.Now,
		newRef:    uuid.NewString,
	}
}

// Place snapshots the cart into an order, appends it to the order history
// and clears the cart. ErrCartEmpty if there is nothing to order.
func (c *Checkout) Place() (domain.Order, error) {
	const op = "Checkout.Place"

	if c.cart.IsEmpty() {
		return domain.Order{}, ErrCartEmpty
	}

	entries := c.cart.Entries()
	order := domain.Order{
		Reference: c.newRef(),
		Lines:     make([]domain.OrderLine, 0, len(entries)),
		Total:     c.cart.TotalPrice(),
		PlacedAt:  c.now(),
	}
	for _, e := range entries {
		order.Lines = append(order.Lines, domain.OrderLine{
			ProductID: e.ID,
			Name:      e.Name,
			Quantity:  e.Quantity,
			UnitPrice: e.Price,
			LineTotal: e.LineTotal(),
		})
	}

	history := append(c.Orders(), order)
	if !c.store.Set(c.ordersKey, history) {
		slog.Warn("order history not persisted", "op", op, "key", c.ordersKey)
	}

	c.cart.Clear()
	return order, nil
}

// Orders returns the persisted order history, oldest first.
func (c *Checkout) Orders() []domain.Order {
	var orders []domain.Order
	c.store.Get(c.ordersKey, &orders)
	return orders
}
