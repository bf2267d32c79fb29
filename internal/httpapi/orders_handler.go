package httpapi

import (
	"net/http"

	"github.com/MitulSachdeva/ShopFlow/internal/domain"
	"github.com/MitulSachdeva/ShopFlow/internal/store"
)

type OrdersHandler struct{}

func NewOrdersHandler() *OrdersHandler {
	return &OrdersHandler{}
}

type OrderItemDTO struct {
	ProductID     string `json:"product_id"`
	Quantity      int    `json:"quantity"`
	SelectedColor string `json:"selected_color,omitempty"`
}

type OrderResponseDTO struct {
	ID              string         `json:"id"`
	UserID          string         `json:"user_id"`
	Items           []OrderItemDTO `json:"items"`
	Total           float64        `json:"total"`
	Status          string         `json:"status"`
	CreatedAt       string         `json:"created_at"`
	ShippingAddress ShippingDTO    `json:"shipping_address"`
}

type ShippingDTO struct {
	Street    string `json:"street"`
	City      string `json:"city"`
	Zip       string `json:"zip"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// GET /api/v1/orders
func (h *OrdersHandler) List(w http.ResponseWriter, r *http.Request) {
	st := store.FromContext(r.Context())

	orders := st.Orders()
	dtos := make([]OrderResponseDTO, 0, len(orders))
	for _, o := range orders {
		dtos = append(dtos, convertOrder(o))
	}

	respondJSON(w, http.StatusOK, dtos)
}

func convertOrder(o domain.Order) OrderResponseDTO {
	items := make([]OrderItemDTO, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItemDTO{
			ProductID:     item.ProductID,
			Quantity:      item.Quantity,
			SelectedColor: item.SelectedColor,
		})
	}

	return OrderResponseDTO{
		ID:        o.ID,
		UserID:    o.UserID,
		Items:     items,
		Total:     o.Total,
		Status:    o.Status.String(),
		CreatedAt: o.CreatedAt,
		ShippingAddress: ShippingDTO{
			Street:    o.ShippingAddress.Street,
			City:      o.ShippingAddress.City,
			Zip:       o.ShippingAddress.Zip,
			FirstName: o.ShippingAddress.FirstName,
			LastName:  o.ShippingAddress.LastName,
		},
	}
}
