package service

import (
	"log/slog"

	"github.com/zafahi/tralashop/internal/core/domain"
	"github.com/zafahi/tralashop/internal/core/port"
)

// Cart is the ordered list of chosen products. Every successful mutation is
// written through to the store under the configured key immediately; there is
// no batching and no debounce.
type Cart struct {
	entries []domain.CartEntry
	store   port.KeyValueStore
	key     string
}

// NewCart loads the persisted entry list. A missing key or a stored value
// that is not a list leaves the cart empty.
func NewCart(store port.KeyValueStore, key string) *Cart {
	c := &Cart{store: store, key: key}
	c.load()
	return c
}

// Add merges quantity into an existing entry or appends a new one.
// An out-of-stock product is rejected without mutating the cart.
func (c *Cart) Add(p domain.Product, quantity int) bool {
	if !p.InStock || quantity <= 0 {
		return false
	}

	for i := range c.entries {
		if c.entries[i].ID == p.ID {
			c.entries[i].Quantity += quantity
			c.persist()
			return true
		}
	}

	c.entries = append(c.entries, domain.CartEntry{Product: p, Quantity: quantity})
	c.persist()
	return true
}

// Remove reports true iff an entry existed and was removed.
func (c *Cart) Remove(productID int) bool {
	for i := range c.entries {
		if c.entries[i].ID == productID {
			c.entries = append(c.entries[:i], c.entries[i+1:]...)
			c.persist()
			return true
		}
	}
	return false
}

// SetQuantity overwrites an entry's quantity. Zero or below removes the
// entry entirely. False if no entry matches.
func (c *Cart) SetQuantity(productID, quantity int) bool {
	if quantity <= 0 {
		return c.Remove(productID)
	}

	for i := range c.entries {
		if c.entries[i].ID == productID {
			c.entries[i].Quantity = quantity
			c.persist()
			return true
		}
	}
	return false
}

// Entry returns the entry for the given product id, if present.
func (c *Cart) Entry(productID int) (domain.CartEntry, bool) {
	for _, e := range c.entries {
		if e.ID == productID {
			return e, true
		}
	}
	return domain.CartEntry{}, false
}

func (c *Cart) Entries() []domain.CartEntry {
	return c.entries
}

func (c *Cart) TotalItems() int {
	var sum int
	for _, e := range c.entries {
		sum += e.Quantity
	}
	return sum
}

func (c *Cart) TotalPrice() float64 {
	var sum float64
	for _, e := range c.entries {
		sum += e.LineTotal()
	}
	return sum
}

func (c *Cart) Clear() {
	c.entries = nil
	c.persist()
}

func (c *Cart) IsEmpty() bool {
	return len(c.entries) == 0
}

func (c *Cart) persist() {
	const op = "Cart.persist"

	if c.entries == nil {
		// keep the stored shape a list, not null
		if !c.store.Set(c.key, []domain.CartEntry{}) {
			slog.Warn("cart not persisted", "op", op, "key", c.key)
		}
		return
	}
	if !c.store.Set(c.key, c.entries) {
		slog.Warn("cart not persisted", "op", op, "key", c.key)
	}
}

func (c *Cart) load() {
	var saved []domain.CartEntry
	c.store.Get(c.key, &saved)
	c.entries = saved
}
