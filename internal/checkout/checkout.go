// Package checkout turns the current cart into an order: it validates the
// submitted shipping and payment details, simulates payment processing and
// records the resulting order snapshot.
package checkout

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/MitulSachdeva/ShopFlow/internal/domain"
	"github.com/MitulSachdeva/ShopFlow/internal/store"
)

const (
	PaymentMethodCard   = "card"
	PaymentMethodPayPal = "paypal"

	// TaxRate is applied to the cart subtotal.
	TaxRate = 0.08

	// Orders above FreeShippingThreshold ship free; below it the flat
	// rate applies.
	FreeShippingThreshold = 100.0
	FlatShippingRate      = 9.99

	// DefaultProcessingDelay simulates the payment round trip.
	DefaultProcessingDelay = 2 * time.Second
)

// ShippingInfo is the shipping form. Every field is required.
type ShippingInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Address   string `json:"address"`
	City      string `json:"city"`
	Zip       string `json:"zip"`
}

// CardInfo is the card form, required only for card payments.
type CardInfo struct {
	CardNumber string `json:"cardNumber"`
	ExpiryDate string `json:"expiryDate"`
	CVC        string `json:"cvc"`
}

// Request is one checkout submission.
type Request struct {
	Shipping      ShippingInfo `json:"shipping"`
	PaymentMethod string       `json:"paymentMethod"`
	Card          CardInfo     `json:"card"`
}

// Summary is the order total breakdown computed at submission time.
type Summary struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Shipping float64 `json:"shipping"`
	Total    float64 `json:"total"`
}

// Service processes checkout submissions against the state container.
type Service struct {
	store  *store.Store
	logger *zap.Logger
	delay  time.Duration

	mu         sync.Mutex
	inProgress bool
}

func NewService(st *store.Store, logger *zap.Logger, delay time.Duration) *Service {
	return &Service{
		store:  st,
		logger: logger,
		delay:  delay,
	}
}

// Submit validates the request, simulates processing, then records the
// order and clears the cart. Validation failures leave all state
// untouched. Only one submission may be in flight at a time; the delay is
// not cancellable once processing has started.
func (s *Service) Submit(ctx context.Context, req Request) (*domain.Order, Summary, error) {
	if err := validate(req); err != nil {
		return nil, Summary{}, err
	}

	if !s.begin() {
		return nil, Summary{}, ErrCheckoutInProgress
	}
	defer s.end()

	cartProducts := s.store.CartProducts()
	if len(cartProducts) == 0 {
		return nil, Summary{}, ErrEmptyCart
	}

	summary := summarize(s.store.CartTotal())

	// Simulated payment latency. The submit control surface stays locked
	// through the in-progress flag for the duration.
	if s.delay > 0 {
		time.Sleep(s.delay)
	}

	items := make([]domain.CartItem, 0, len(cartProducts))
	for _, cp := range cartProducts {
		items = append(items, cp.Item)
	}

	userID := "guest"
	if u := s.store.User(); u != nil {
		userID = u.ID
	}

	order := domain.Order{
		ID:        fmt.Sprintf("order-%s", uuid.New().String()),
		UserID:    userID,
		Items:     items,
		Total:     summary.Total,
		Status:    domain.OrderStatusPending,
		CreatedAt: time.Now().Format("2006-01-02"),
		ShippingAddress: domain.ShippingAddress{
			Street:    req.Shipping.Address,
			City:      req.Shipping.City,
			Zip:       req.Shipping.Zip,
			FirstName: req.Shipping.FirstName,
			LastName:  req.Shipping.LastName,
		},
	}

	s.store.AddOrder(order)
	s.store.ClearCart()

	s.logger.Info("order placed",
		zap.String("order_id", order.ID),
		zap.String("user_id", order.UserID),
		zap.Float64("total", order.Total),
		zap.Int("items", len(order.Items)),
	)

	return &order, summary, nil
}

func (s *Service) begin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inProgress {
		return false
	}
	s.inProgress = true
	return true
}

func (s *Service) end() {
	s.mu.Lock()
	s.inProgress = false
	s.mu.Unlock()
}

func validate(req Request) error {
	sh := req.Shipping
	if sh.FirstName == "" || sh.LastName == "" || sh.Email == "" ||
		sh.Address == "" || sh.City == "" || sh.Zip == "" {
		return ErrMissingShippingFields
	}

	if req.PaymentMethod == PaymentMethodCard {
		if req.Card.CardNumber == "" || req.Card.ExpiryDate == "" || req.Card.CVC == "" {
			return ErrMissingCardFields
		}
	}

	return nil
}

func summarize(subtotal float64) Summary {
	shipping := FlatShippingRate
	if subtotal > FreeShippingThreshold {
		shipping = 0
	}
	tax := subtotal * TaxRate
	return Summary{
		Subtotal: subtotal,
		Tax:      tax,
		Shipping: shipping,
		Total:    subtotal + tax + shipping,
	}
}
