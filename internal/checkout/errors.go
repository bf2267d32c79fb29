package checkout

import "errors"

var (
	ErrEmptyCart             = errors.New("cart is empty, nothing to checkout")
	ErrMissingShippingFields = errors.New("all shipping information fields are required")
	ErrMissingCardFields     = errors.New("all card information fields are required")
	ErrCheckoutInProgress    = errors.New("a checkout submission is already in progress")
)
