package cart

import "errors"

var (
	// -- Validation & Input --
	ErrInvalidQuantity = errors.New("invalid cart quantity")

	// -- Resource State --
	ErrEntryNotFound = errors.New("cart entry not found")
	ErrCartEmpty     = errors.New("cart is empty")
)
