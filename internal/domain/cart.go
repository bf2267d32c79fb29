package domain

// CartItem is one cart line. Lines are keyed by (ProductID, SelectedColor):
// the same product in two colors occupies two lines.
type CartItem struct {
	ProductID     string `json:"productId"`
	Quantity      int    `json:"quantity"`
	SelectedColor string `json:"selectedColor,omitempty"`
}

// CartProduct joins a cart line with its resolved catalog product.
type CartProduct struct {
	Product Product  `json:"product"`
	Item    CartItem `json:"cartItem"`
}
