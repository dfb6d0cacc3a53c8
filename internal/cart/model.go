package cart

import (
	"pharmacart-be/internal/catalog"
)

// Entry is one line in a user's cart. At most one entry exists per
// medicine id, and Quantity is always >= 1 (an update below 1 removes
// the entry instead).
type Entry struct {
	Medicine catalog.Medicine `json:"medicine"`
	Quantity int              `json:"quantity"`
}

func (e Entry) Subtotal() float64 {
	return e.Medicine.Price * float64(e.Quantity)
}
