package domain

// CartEntry is a product snapshot plus the chosen quantity.
// At most one entry per product id exists in a cart at any time.
type CartEntry struct {
	Product
	Quantity int `json:"quantity"`
}

// LineTotal is the entry's contribution to the cart total.
func (e CartEntry) LineTotal() float64 {
	return e.Price * float64(e.Quantity)
}
