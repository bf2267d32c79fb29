package domain

// Review is a static customer review attached to a catalog product.
type Review struct {
	ID           string  `json:"id"`
	ProductID    string  `json:"productId"`
	UserID       string  `json:"userId"`
	Rating       float64 `json:"rating"`
	Comment      string  `json:"comment"`
	UserName     string  `json:"userName"`
	UserInitials string  `json:"userInitials"`
	CreatedAt    string  `json:"createdAt"`
}
