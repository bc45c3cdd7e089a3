package domain

import "time"

// Order is the outcome of a successful checkout: a snapshot of the cart
// at submission time plus the customer's form values.
type Order struct {
	ID         string            `json:"id"`
	Items      []LineItem        `json:"items"`
	ItemCount  int               `json:"item_count"`
	TotalPrice float64           `json:"total_price"`
	Customer   map[string]string `json:"customer"`
	PlacedAt   time.Time         `json:"placed_at"`
}
