package domain

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

func (s OrderStatus) String() string {
	return string(s)
}

// ShippingAddress is the address snapshot captured at checkout.
type ShippingAddress struct {
	Street    string `json:"street"`
	City      string `json:"city"`
	Zip       string `json:"zip"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Order is an immutable snapshot created at checkout completion. Total is
// computed once at creation time and never recomputed, even if catalog
// prices change later.
type Order struct {
	ID              string          `json:"id"`
	UserID          string          `json:"userId"`
	Items           []CartItem      `json:"items"`
	Total           float64         `json:"total"`
	Status          OrderStatus     `json:"status"`
	CreatedAt       string          `json:"createdAt"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
}
