package store

import "github.com/MitulSachdeva/ShopFlow/internal/domain"

// DefaultTheme is the theme used when no preference was ever persisted.
const DefaultTheme = domain.ThemeDark

func defaultCart() []domain.CartItem {
	return []domain.CartItem{}
}

func defaultWishlist() []string {
	return []string{}
}

// DefaultUser is the seeded sample profile for a fresh session.
func DefaultUser() *domain.User {
	return &domain.User{
		ID:          "user1",
		FirstName:   "Sophia",
		LastName:    "Carter",
		Email:       "sophia.carter@email.com",
		Phone:       "+1 (555) 123-4567",
		DateOfBirth: "1992-03-15",
		Address: &domain.Address{
			Street: "123 Main Street, Apt 4B",
			City:   "New York",
			Zip:    "10001",
		},
	}
}

// DefaultOrders is the seeded sample order history for a fresh session.
func DefaultOrders() []domain.Order {
	shipping := domain.ShippingAddress{
		Street:    "123 Main Street, Apt 4B",
		City:      "New York",
		Zip:       "10001",
		FirstName: "Sophia",
		LastName:  "Carter",
	}
	return []domain.Order{
		{
			ID:              "order-123456",
			UserID:          "user1",
			Items:           []domain.CartItem{{ProductID: "4", Quantity: 1}},
			Total:           249.99,
			Status:          domain.OrderStatusDelivered,
			CreatedAt:       "2024-03-15",
			ShippingAddress: shipping,
		},
		{
			ID:              "order-789012",
			UserID:          "user1",
			Items:           []domain.CartItem{{ProductID: "7", Quantity: 1}},
			Total:           189.99,
			Status:          domain.OrderStatusShipped,
			CreatedAt:       "2024-03-10",
			ShippingAddress: shipping,
		},
		{
			ID:              "order-456789",
			UserID:          "user1",
			Items:           []domain.CartItem{{ProductID: "2", Quantity: 1}},
			Total:           2499.99,
			Status:          domain.OrderStatusDelivered,
			CreatedAt:       "2024-03-05",
			ShippingAddress: shipping,
		},
	}
}
