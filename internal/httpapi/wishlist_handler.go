package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MitulSachdeva/ShopFlow/internal/store"
)

type WishlistHandler struct{}

func NewWishlistHandler() *WishlistHandler {
	return &WishlistHandler{}
}

type WishlistResponseDTO struct {
	Products []ProductResponse `json:"products"`
}

// GET /api/v1/wishlist
func (h *WishlistHandler) Get(w http.ResponseWriter, r *http.Request) {
	st := store.FromContext(r.Context())
	respondJSON(w, http.StatusOK, wishlistResponse(st))
}

// POST /api/v1/wishlist/{product_id}
func (h *WishlistHandler) Add(w http.ResponseWriter, r *http.Request) {
	st := store.FromContext(r.Context())

	productID := chi.URLParam(r, "product_id")
	if _, ok := st.Product(productID); !ok {
		respondError(w, http.StatusNotFound, "not_found", "product not found")
		return
	}

	// Idempotent: adding an id twice leaves one occurrence.
	st.AddToWishlist(productID)
	respondJSON(w, http.StatusCreated, wishlistResponse(st))
}

// DELETE /api/v1/wishlist/{product_id}
func (h *WishlistHandler) Remove(w http.ResponseWriter, r *http.Request) {
	st := store.FromContext(r.Context())
	st.RemoveFromWishlist(chi.URLParam(r, "product_id"))
	respondJSON(w, http.StatusOK, wishlistResponse(st))
}

func wishlistResponse(st *store.Store) WishlistResponseDTO {
	products := st.WishlistProducts()
	resp := WishlistResponseDTO{Products: make([]ProductResponse, 0, len(products))}
	for _, p := range products {
		resp.Products = append(resp.Products, convertProduct(p))
	}
	return resp
}
