package catalog

import "github.com/MitulSachdeva/ShopFlow/internal/domain"

// Default returns the built-in storefront catalog. The dataset is fixed:
// ids, prices and ordering are part of the storefront's seeded state and
// referenced by the seeded sample orders.
func Default() *Catalog {
	return New(seedProducts(), seedReviews())
}

func seedProducts() []domain.Product {
	return []domain.Product{
		{
			ID:          "1",
			Name:        "Aura Wireless Headphones",
			Description: "Over-ear noise-cancelling headphones with 40 hour battery life and studio-grade drivers.",
			Price:       349.99,
			Category:    domain.CategoryElectronics,
			Brand:       "AuraSound",
			Image:       "/images/products/headphones.jpg",
			Images:      []string{"/images/products/headphones.jpg", "/images/products/headphones-side.jpg"},
			Rating:      4.7,
			ReviewCount: 1243,
			InStock:     true,
			Features:    []string{"Active noise cancellation", "40h battery", "Bluetooth 5.3"},
		},
		{
			ID:          "2",
			Name:        "UltraBook Pro 15",
			Description: "Thin and light 15-inch laptop with a liquid retina display for creators on the move.",
			Price:       2499.99,
			Category:    domain.CategoryElectronics,
			Brand:       "Novatech",
			Image:       "/images/products/ultrabook.jpg",
			Images:      []string{"/images/products/ultrabook.jpg", "/images/products/ultrabook-open.jpg"},
			Rating:      4.8,
			ReviewCount: 512,
			InStock:     true,
			Features:    []string{"15-inch retina display", "32GB RAM", "1TB SSD"},
		},
		{
			ID:          "3",
			Name:        "Leather Weekender Bag",
			Description: "Full-grain leather travel bag with brass hardware and a padded laptop sleeve.",
			Price:       219.99,
			Category:    domain.CategoryFashion,
			Brand:       "Harlow & Co",
			Image:       "/images/products/weekender.jpg",
			Images:      []string{"/images/products/weekender.jpg"},
			Rating:      4.4,
			ReviewCount: 187,
			InStock:     true,
		},
		{
			ID:          "4",
			Name:        "Pulse Smart Watch Series 5",
			Description: "Fitness watch with heart-rate tracking, GPS and a week of battery on a single charge.",
			Price:       249.99,
			Category:    domain.CategoryElectronics,
			Brand:       "Pulse",
			Image:       "/images/products/smartwatch.jpg",
			Images:      []string{"/images/products/smartwatch.jpg", "/images/products/smartwatch-band.jpg"},
			Rating:      4.5,
			ReviewCount: 2031,
			InStock:     true,
			Features:    []string{"Heart-rate tracking", "Built-in GPS", "7 day battery"},
		},
		{
			ID:          "5",
			Name:        "BrewCraft Espresso Machine",
			Description: "Semi-automatic espresso machine with a 15-bar pump and integrated steam wand.",
			Price:       549.99,
			Category:    domain.CategoryHome,
			Brand:       "BrewCraft",
			Image:       "/images/products/espresso.jpg",
			Images:      []string{"/images/products/espresso.jpg"},
			Rating:      4.6,
			ReviewCount: 398,
			InStock:     true,
		},
		{
			ID:          "6",
			Name:        "Stride CloudRunner Shoes",
			Description: "Lightweight road running shoes with responsive foam cushioning.",
			Price:       129.99,
			Category:    domain.CategorySports,
			Brand:       "Stride",
			Image:       "/images/products/runners.jpg",
			Images:      []string{"/images/products/runners.jpg"},
			Rating:      4.3,
			ReviewCount: 764,
			InStock:     true,
		},
		{
			ID:          "7",
			Name:        "Novatech Mechanical Keyboard",
			Description: "Hot-swappable mechanical keyboard with PBT keycaps and south-facing RGB.",
			Price:       189.99,
			Category:    domain.CategoryElectronics,
			Brand:       "Novatech",
			Image:       "/images/products/keyboard.jpg",
			Images:      []string{"/images/products/keyboard.jpg"},
			Rating:      4.6,
			ReviewCount: 421,
			InStock:     true,
		},
		{
			ID:          "8",
			Name:        "Classic Denim Jacket",
			Description: "Mid-weight denim jacket with a worn-in wash and relaxed fit.",
			Price:       89.99,
			Category:    domain.CategoryFashion,
			Brand:       "Harlow & Co",
			Image:       "/images/products/denim.jpg",
			Images:      []string{"/images/products/denim.jpg"},
			Rating:      4.2,
			ReviewCount: 96,
			InStock:     true,
		},
		{
			ID:          "9",
			Name:        "The Craft of Software",
			Description: "A practical tour of software design, from naming to architecture.",
			Price:       49.99,
			Category:    domain.CategoryBooks,
			Brand:       "Inkwell Press",
			Image:       "/images/products/craft-book.jpg",
			Images:      []string{"/images/products/craft-book.jpg"},
			Rating:      4.9,
			ReviewCount: 1088,
			InStock:     true,
		},
		{
			ID:          "10",
			Name:        "Stride Pro Yoga Mat",
			Description: "Non-slip 6mm yoga mat with alignment guides and carry strap.",
			Price:       39.99,
			Category:    domain.CategorySports,
			Brand:       "Stride",
			Image:       "/images/products/yogamat.jpg",
			Images:      []string{"/images/products/yogamat.jpg"},
			Rating:      4.1,
			ReviewCount: 233,
			InStock:     false,
		},
		{
			ID:          "11",
			Name:        "Hearthstone Dinnerware Set",
			Description: "16-piece stoneware dinnerware set in a matte glaze, dishwasher safe.",
			Price:       129.99,
			Category:    domain.CategoryHome,
			Brand:       "Hearthstone",
			Image:       "/images/products/dinnerware.jpg",
			Images:      []string{"/images/products/dinnerware.jpg"},
			Rating:      4.4,
			ReviewCount: 152,
			InStock:     true,
		},
		{
			ID:          "12",
			Name:        "Meridian Field Watch",
			Description: "Stainless field watch with sapphire crystal and a 38mm brushed case.",
			Price:       199.99,
			Category:    domain.CategoryFashion,
			Brand:       "Meridian",
			Image:       "/images/products/fieldwatch.jpg",
			Images:      []string{"/images/products/fieldwatch.jpg"},
			Rating:      4.5,
			ReviewCount: 310,
			InStock:     true,
		},
	}
}

func seedReviews() []domain.Review {
	return []domain.Review{
		{
			ID:           "review-1",
			ProductID:    "1",
			UserID:       "user2",
			Rating:       5,
			Comment:      "The noise cancellation is unreal on flights. Battery easily lasts a work week.",
			UserName:     "Marcus Webb",
			UserInitials: "MW",
			CreatedAt:    "2024-02-18",
		},
		{
			ID:           "review-2",
			ProductID:    "1",
			UserID:       "user3",
			Rating:       4,
			Comment:      "Great sound, slightly tight fit for larger heads.",
			UserName:     "Elena Ruiz",
			UserInitials: "ER",
			CreatedAt:    "2024-03-02",
		},
		{
			ID:           "review-3",
			ProductID:    "4",
			UserID:       "user4",
			Rating:       5,
			Comment:      "GPS locks fast and the battery claim is accurate. Best watch I've owned.",
			UserName:     "Dana Kim",
			UserInitials: "DK",
			CreatedAt:    "2024-01-27",
		},
		{
			ID:           "review-4",
			ProductID:    "4",
			UserID:       "user5",
			Rating:       4,
			Comment:      "Sleep tracking is hit or miss, everything else is excellent.",
			UserName:     "Priya Nair",
			UserInitials: "PN",
			CreatedAt:    "2024-02-09",
		},
		{
			ID:           "review-5",
			ProductID:    "2",
			UserID:       "user6",
			Rating:       5,
			Comment:      "Compiles my whole project before my old machine finished indexing.",
			UserName:     "Tom Okafor",
			UserInitials: "TO",
			CreatedAt:    "2024-03-11",
		},
		{
			ID:           "review-6",
			ProductID:    "9",
			UserID:       "user7",
			Rating:       5,
			Comment:      "Required reading for my whole team now.",
			UserName:     "Sarah Lindqvist",
			UserInitials: "SL",
			CreatedAt:    "2024-02-25",
		},
	}
}
