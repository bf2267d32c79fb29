package checkout

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/MitulSachdeva/ShopFlow/internal/catalog"
	"github.com/MitulSachdeva/ShopFlow/internal/domain"
	"github.com/MitulSachdeva/ShopFlow/internal/storage"
	"github.com/MitulSachdeva/ShopFlow/internal/store"
)

type memSlots struct {
	mu    sync.Mutex
	slots map[string][]byte
}

func newMemSlots() *memSlots {
	return &memSlots{slots: make(map[string][]byte)}
}

func (m *memSlots) Read(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.slots[key]
	if !ok {
		return nil, storage.ErrSlotEmpty
	}
	return value, nil
}

func (m *memSlots) Write(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slots[key] = value
	return nil
}

func (m *memSlots) Close() error { return nil }

func newTestService(t *testing.T, delay time.Duration) (*Service, *store.Store) {
	t.Helper()
	st := store.New(newMemSlots(), catalog.Default(), zap.NewNop())
	return NewService(st, zap.NewNop(), delay), st
}

func validRequest() Request {
	return Request{
		Shipping: ShippingInfo{
			FirstName: "Sophia",
			LastName:  "Carter",
			Email:     "sophia.carter@email.com",
			Address:   "123 Main Street, Apt 4B",
			City:      "New York",
			Zip:       "10001",
		},
		PaymentMethod: PaymentMethodCard,
		Card: CardInfo{
			CardNumber: "4242424242424242",
			ExpiryDate: "12/27",
			CVC:        "123",
		},
	}
}

func TestSubmit_Success(t *testing.T) {
	svc, st := newTestService(t, 0)
	st.AddToCart("4", 2, "black") // 2 x 249.99 = 499.98

	order, summary, err := svc.Submit(context.Background(), validRequest())
	require.NoError(t, err)
	require.NotNil(t, order)

	assert.True(t, strings.HasPrefix(order.ID, "order-"))
	assert.Equal(t, "user1", order.UserID)
	assert.Equal(t, domain.OrderStatusPending, order.Status)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.Equal(t, "New York", order.ShippingAddress.City)

	// Subtotal over the threshold ships free
	assert.InDelta(t, 499.98, summary.Subtotal, 0.001)
	assert.InDelta(t, 39.9984, summary.Tax, 0.001)
	assert.Zero(t, summary.Shipping)
	assert.InDelta(t, 539.9784, summary.Total, 0.001)
	assert.InDelta(t, summary.Total, order.Total, 0.001)

	// Order recorded first, cart cleared after
	assert.Empty(t, st.Cart())
	orders := st.Orders()
	require.Len(t, orders, 4)
	assert.Equal(t, order.ID, orders[0].ID)
}

func TestSubmit_FlatShippingUnderThreshold(t *testing.T) {
	svc, st := newTestService(t, 0)
	st.AddToCart("10", 1, "") // 39.99

	_, summary, err := svc.Submit(context.Background(), validRequest())
	require.NoError(t, err)

	assert.InDelta(t, 39.99, summary.Subtotal, 0.001)
	assert.InDelta(t, FlatShippingRate, summary.Shipping, 0.001)
	assert.InDelta(t, 39.99+39.99*TaxRate+9.99, summary.Total, 0.001)
}

func TestSubmit_MissingShippingFields(t *testing.T) {
	svc, st := newTestService(t, 0)
	st.AddToCart("4", 1, "")

	req := validRequest()
	req.Shipping.Zip = ""

	_, _, err := svc.Submit(context.Background(), req)
	assert.ErrorIs(t, err, ErrMissingShippingFields)

	// Validation failures leave all state untouched
	assert.Len(t, st.Cart(), 1)
	assert.Len(t, st.Orders(), 3)
}

func TestSubmit_MissingCardFieldsOnlyForCardPayments(t *testing.T) {
	svc, st := newTestService(t, 0)
	st.AddToCart("4", 1, "")

	req := validRequest()
	req.Card = CardInfo{}

	_, _, err := svc.Submit(context.Background(), req)
	assert.ErrorIs(t, err, ErrMissingCardFields)

	// PayPal submissions skip the card form entirely
	req.PaymentMethod = PaymentMethodPayPal
	_, _, err = svc.Submit(context.Background(), req)
	assert.NoError(t, err)
}

func TestSubmit_EmptyCart(t *testing.T) {
	svc, st := newTestService(t, 0)

	_, _, err := svc.Submit(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Len(t, st.Orders(), 3)
}

func TestSubmit_DanglingLinesOnlyCountAsEmpty(t *testing.T) {
	svc, st := newTestService(t, 0)
	st.AddToCart("ghost", 2, "")

	_, _, err := svc.Submit(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestSubmit_RejectsConcurrentSubmission(t *testing.T) {
	svc, st := newTestService(t, 150*time.Millisecond)
	st.AddToCart("4", 1, "")

	ctx := context.Background()
	firstDone := make(chan error, 1)
	go func() {
		_, _, err := svc.Submit(ctx, validRequest())
		firstDone <- err
	}()

	// Wait until the first submission is inside the processing window
	require.Eventually(t, func() bool {
		svc.mu.Lock()
		defer svc.mu.Unlock()
		return svc.inProgress
	}, time.Second, 5*time.Millisecond)

	_, _, err := svc.Submit(ctx, validRequest())
	assert.ErrorIs(t, err, ErrCheckoutInProgress)

	require.NoError(t, <-firstDone)
	require.Len(t, st.Orders(), 4)
}

func TestSubmit_GuestWhenSignedOut(t *testing.T) {
	svc, st := newTestService(t, 0)
	st.SetUser(nil)
	st.AddToCart("1", 1, "")

	order, _, err := svc.Submit(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "guest", order.UserID)
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name     string
		subtotal float64
		want     Summary
	}{
		{
			name:     "free shipping above threshold",
			subtotal: 200,
			want:     Summary{Subtotal: 200, Tax: 16, Shipping: 0, Total: 216},
		},
		{
			name:     "flat rate below threshold",
			subtotal: 50,
			want:     Summary{Subtotal: 50, Tax: 4, Shipping: 9.99, Total: 63.99},
		},
		{
			name:     "threshold itself still pays shipping",
			subtotal: 100,
			want:     Summary{Subtotal: 100, Tax: 8, Shipping: 9.99, Total: 117.99},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := summarize(tt.subtotal)
			assert.InDelta(t, tt.want.Subtotal, got.Subtotal, 0.001)
			assert.InDelta(t, tt.want.Tax, got.Tax, 0.001)
			assert.InDelta(t, tt.want.Shipping, got.Shipping, 0.001)
			assert.InDelta(t, tt.want.Total, got.Total, 0.001)
		})
	}
}
