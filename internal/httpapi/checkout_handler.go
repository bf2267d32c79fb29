package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MitulSachdeva/ShopFlow/internal/checkout"
)

type CheckoutHandler struct {
	checkout *checkout.Service
}

func NewCheckoutHandler(c *checkout.Service) *CheckoutHandler {
	return &CheckoutHandler{checkout: c}
}

type CheckoutRequestDTO struct {
	Shipping struct {
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Email     string `json:"email"`
		Address   string `json:"address"`
		City      string `json:"city"`
		Zip       string `json:"zip"`
	} `json:"shipping"`
	PaymentMethod string `json:"payment_method"`
	Card          struct {
		CardNumber string `json:"card_number"`
		ExpiryDate string `json:"expiry_date"`
		CVC        string `json:"cvc"`
	} `json:"card"`
}

type CheckoutResponseDTO struct {
	Order    OrderResponseDTO `json:"order"`
	Subtotal float64          `json:"subtotal"`
	Tax      float64          `json:"tax"`
	Shipping float64          `json:"shipping"`
	Total    float64          `json:"total"`
}

// POST /api/v1/checkout
func (h *CheckoutHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var dto CheckoutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	req := checkout.Request{
		Shipping: checkout.ShippingInfo{
			FirstName: dto.Shipping.FirstName,
			LastName:  dto.Shipping.LastName,
			Email:     dto.Shipping.Email,
			Address:   dto.Shipping.Address,
			City:      dto.Shipping.City,
			Zip:       dto.Shipping.Zip,
		},
		PaymentMethod: dto.PaymentMethod,
		Card: checkout.CardInfo{
			CardNumber: dto.Card.CardNumber,
			ExpiryDate: dto.Card.ExpiryDate,
			CVC:        dto.Card.CVC,
		},
	}
	if req.PaymentMethod == "" {
		req.PaymentMethod = checkout.PaymentMethodCard
	}

	order, summary, err := h.checkout.Submit(r.Context(), req)
	if err != nil {
		handleCheckoutError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, CheckoutResponseDTO{
		Order:    convertOrder(*order),
		Subtotal: summary.Subtotal,
		Tax:      summary.Tax,
		Shipping: summary.Shipping,
		Total:    summary.Total,
	})
}

func handleCheckoutError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, checkout.ErrMissingShippingFields):
		respondError(w, http.StatusUnprocessableEntity, "missing_shipping_fields", err.Error())
	case errors.Is(err, checkout.ErrMissingCardFields):
		respondError(w, http.StatusUnprocessableEntity, "missing_card_fields", err.Error())
	case errors.Is(err, checkout.ErrEmptyCart):
		respondError(w, http.StatusUnprocessableEntity, "empty_cart", err.Error())
	case errors.Is(err, checkout.ErrCheckoutInProgress):
		respondError(w, http.StatusConflict, "checkout_in_progress", err.Error())
	default:
		respondError(w, http.StatusInternalServerError, "internal_error", "checkout failed")
	}
}
