package domain

import "time"

// Order is the demo checkout snapshot of a cart. No payment is attached.
type Order struct {
	Reference string      `json:"reference"`
	Lines     []OrderLine `json:"lines"`
	Total     float64     `json:"total"`
	PlacedAt  time.Time   `json:"placedAt"`
}

type OrderLine struct {
	ProductID int     `json:"productId"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	LineTotal float64 `json:"lineTotal"`
}
