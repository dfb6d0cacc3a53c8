package order

import "errors"

var (
	// -- Validation & Input --
	ErrEmptyCart = errors.New("cart is empty, add some medicines first")

	// -- Workflow State --
	ErrCheckoutInProgress = errors.New("checkout already in progress")

	// -- Persistence Failures --
	ErrArchiveUnavailable = errors.New("failed to place order")
)
