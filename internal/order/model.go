package order

import (
	"pharmacart-be/internal/cart"
)

type Status string

const (
	StatusPending    Status = "Pending"
	StatusProcessing Status = "Processing"
	StatusShipped    Status = "Shipped"
	StatusDelivered  Status = "Delivered"
)

// Order is an immutable snapshot of a completed checkout. Only Pending is
// ever produced by checkout; the other statuses appear in seed data.
type Order struct {
	ID     int64   `json:"id"`
	Date   string  `json:"date"`
	Status Status  `json:"status"`
	Total  float64 `json:"total"`
	Items  int     `json:"items"`

	// Medicines is a deep copy of the cart entries at checkout time; it
	// must survive the cart being cleared.
	Medicines []cart.Entry `json:"medicines,omitempty"`
}
