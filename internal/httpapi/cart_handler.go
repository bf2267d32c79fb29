package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MitulSachdeva/ShopFlow/internal/store"
)

// CartHandler exposes the cart operations of the state container. The
// container itself arrives on the request context via WithStore.
type CartHandler struct{}

func NewCartHandler() *CartHandler {
	return &CartHandler{}
}

type AddItemRequestDTO struct {
	ProductID     string `json:"product_id"`
	Quantity      int    `json:"quantity"`
	SelectedColor string `json:"selected_color,omitempty"`
}

type UpdateQuantityRequestDTO struct {
	Quantity int `json:"quantity"`
}

type CartLineDTO struct {
	ProductID     string  `json:"product_id"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	Image         string  `json:"image"`
	Quantity      int     `json:"quantity"`
	SelectedColor string  `json:"selected_color,omitempty"`
	LineTotal     float64 `json:"line_total"`
}

type CartResponseDTO struct {
	Items      []CartLineDTO `json:"items"`
	Subtotal   float64       `json:"subtotal"`
	ItemsCount int           `json:"items_count"`
}

// GET /api/v1/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	st := store.FromContext(r.Context())
	respondJSON(w, http.StatusOK, cartResponse(st))
}

// POST /api/v1/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	st := store.FromContext(r.Context())

	var req AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if req.ProductID == "" {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id is required")
		return
	}
	if req.Quantity < 0 {
		respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must not be negative")
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	// The container tolerates dangling ids; the surface does not hand
	// them in.
	if _, ok := st.Product(req.ProductID); !ok {
		respondError(w, http.StatusNotFound, "not_found", "product not found")
		return
	}

	st.AddToCart(req.ProductID, req.Quantity, req.SelectedColor)
	respondJSON(w, http.StatusCreated, cartResponse(st))
}

// PUT /api/v1/cart/items/{product_id}
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	st := store.FromContext(r.Context())

	productID := chi.URLParam(r, "product_id")
	if productID == "" {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id is required")
		return
	}

	var req UpdateQuantityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	st.UpdateCartQuantity(productID, req.Quantity)
	respondJSON(w, http.StatusOK, cartResponse(st))
}

// DELETE /api/v1/cart/items/{product_id}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	st := store.FromContext(r.Context())

	productID := chi.URLParam(r, "product_id")
	if productID == "" {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id is required")
		return
	}

	st.RemoveFromCart(productID)
	respondJSON(w, http.StatusOK, cartResponse(st))
}

// DELETE /api/v1/cart
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	st := store.FromContext(r.Context())
	st.ClearCart()
	respondJSON(w, http.StatusOK, cartResponse(st))
}

func cartResponse(st *store.Store) CartResponseDTO {
	cartProducts := st.CartProducts()

	lines := make([]CartLineDTO, 0, len(cartProducts))
	for _, cp := range cartProducts {
		lines = append(lines, CartLineDTO{
			ProductID:     cp.Product.ID,
			Name:          cp.Product.Name,
			Price:         cp.Product.Price,
			Image:         cp.Product.Image,
			Quantity:      cp.Item.Quantity,
			SelectedColor: cp.Item.SelectedColor,
			LineTotal:     cp.Product.Price * float64(cp.Item.Quantity),
		})
	}

	return CartResponseDTO{
		Items:      lines,
		Subtotal:   st.CartTotal(),
		ItemsCount: st.CartItemsCount(),
	}
}
