package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MitulSachdeva/ShopFlow/internal/catalog"
	"github.com/MitulSachdeva/ShopFlow/internal/checkout"
	"github.com/MitulSachdeva/ShopFlow/internal/search"
	"github.com/MitulSachdeva/ShopFlow/internal/store"
)

// Deps is everything the router needs, assembled by the composition root.
type Deps struct {
	Store          *store.Store
	Catalog        *catalog.Catalog
	Search         *search.Service
	Checkout       *checkout.Service
	RequestTimeout time.Duration
}

// NewRouter wires the full UI-facing surface.
func NewRouter(d Deps) http.Handler {
	productHandler := NewProductHandler(d.Search, d.Catalog, d.RequestTimeout)
	cartHandler := NewCartHandler()
	wishlistHandler := NewWishlistHandler()
	ordersHandler := NewOrdersHandler()
	checkoutHandler := NewCheckoutHandler(d.Checkout)
	accountHandler := NewAccountHandler()

	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestIDMiddleware)
	r.Use(middleware.Timeout(d.RequestTimeout))
	r.Use(middleware.Compress(5))
	r.Use(WithStore(d.Store))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", productHandler.List)
			r.Get("/{product_id}", productHandler.Get)
			r.Get("/{product_id}/reviews", productHandler.Reviews)
		})
		r.Get("/categories", productHandler.Categories)
		r.Get("/brands", productHandler.Brands)

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartHandler.GetCart)
			r.Delete("/", cartHandler.ClearCart)
			r.Post("/items", cartHandler.AddItem)
			r.Put("/items/{product_id}", cartHandler.UpdateQuantity)
			r.Delete("/items/{product_id}", cartHandler.RemoveItem)
		})

		r.Route("/wishlist", func(r chi.Router) {
			r.Get("/", wishlistHandler.Get)
			r.Post("/{product_id}", wishlistHandler.Add)
			r.Delete("/{product_id}", wishlistHandler.Remove)
		})

		r.Get("/orders", ordersHandler.List)
		r.Post("/checkout", checkoutHandler.Submit)

		r.Route("/account", func(r chi.Router) {
			r.Get("/", accountHandler.Get)
			r.Put("/profile", accountHandler.SaveProfile)
		})
		r.Get("/theme", accountHandler.GetTheme)
		r.Post("/theme/toggle", accountHandler.ToggleTheme)
	})

	return r
}
