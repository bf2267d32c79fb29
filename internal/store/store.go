// Package store holds the storefront's mutable state: cart, wishlist,
// user profile, order history and theme. It is the single source of truth;
// every mutation immediately persists the owning slot so a restart picks
// the session back up.
package store

import (
	"context"
	"encoding/json"
	"sync"

	"go.uber.org/zap"

	"github.com/MitulSachdeva/ShopFlow/internal/catalog"
	"github.com/MitulSachdeva/ShopFlow/internal/domain"
	"github.com/MitulSachdeva/ShopFlow/internal/storage"
)

// Store is the state container. It is constructed once by the composition
// root and shared by reference; it must not be copied.
type Store struct {
	mu      sync.RWMutex
	catalog *catalog.Catalog
	slots   storage.SlotStore
	logger  *zap.Logger

	cart     []domain.CartItem
	wishlist []string
	theme    domain.Theme
	user     *domain.User
	orders   []domain.Order

	themeObservers []func(domain.Theme)
}

// New builds a container from the persisted slots, falling back to the
// seeded defaults for any slot that is empty or fails validation. The
// fallback is silent: a corrupt slot behaves like a fresh profile.
func New(slots storage.SlotStore, cat *catalog.Catalog, logger *zap.Logger) *Store {
	s := &Store{
		catalog: cat,
		slots:   slots,
		logger:  logger,
	}
	s.rehydrate()
	return s
}

func (s *Store) rehydrate() {
	ctx := context.Background()

	s.cart = defaultCart()
	if raw, err := s.slots.Read(ctx, storage.SlotCart); err == nil {
		var cart []domain.CartItem
		if json.Unmarshal(raw, &cart) == nil && validCart(cart) {
			s.cart = cart
		}
	}

	s.wishlist = defaultWishlist()
	if raw, err := s.slots.Read(ctx, storage.SlotWishlist); err == nil {
		var wishlist []string
		if json.Unmarshal(raw, &wishlist) == nil {
			s.wishlist = dedupe(wishlist)
		}
	}

	s.theme = DefaultTheme
	if raw, err := s.slots.Read(ctx, storage.SlotTheme); err == nil {
		var theme domain.Theme
		if json.Unmarshal(raw, &theme) == nil && theme.Valid() {
			s.theme = theme
		}
	}

	s.user = DefaultUser()
	if raw, err := s.slots.Read(ctx, storage.SlotUser); err == nil {
		var user *domain.User
		if json.Unmarshal(raw, &user) == nil {
			s.user = user
		}
	}

	s.orders = DefaultOrders()
	if raw, err := s.slots.Read(ctx, storage.SlotOrders); err == nil {
		var orders []domain.Order
		if json.Unmarshal(raw, &orders) == nil && validOrders(orders) {
			s.orders = orders
		}
	}
}

func validCart(cart []domain.CartItem) bool {
	for _, item := range cart {
		if item.ProductID == "" || item.Quantity < 1 {
			return false
		}
	}
	return true
}

func validOrders(orders []domain.Order) bool {
	for _, o := range orders {
		if o.ID == "" || !o.Status.Valid() {
			return false
		}
	}
	return true
}

func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := ids[:0]
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

// AddToCart merges into the line keyed by (productID, selectedColor) or
// appends a new line. Quantities below 1 are treated as 1. Whether the
// product exists in the catalog is the caller's concern; the container
// tolerates dangling references.
func (s *Store) AddToCart(productID string, quantity int, selectedColor string) {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, item := range s.cart {
		if item.ProductID == productID && item.SelectedColor == selectedColor {
			s.cart[i].Quantity += quantity
			s.persistCart()
			return
		}
	}

	s.cart = append(s.cart, domain.CartItem{
		ProductID:     productID,
		Quantity:      quantity,
		SelectedColor: selectedColor,
	})
	s.persistCart()
}

// RemoveFromCart deletes every line for the product, across color variants.
// Removal keys on the product alone, coarser than the add key.
func (s *Store) RemoveFromCart(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLinesLocked(productID)
	s.persistCart()
}

func (s *Store) removeLinesLocked(productID string) {
	kept := s.cart[:0]
	for _, item := range s.cart {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	s.cart = kept
}

// UpdateCartQuantity sets the quantity on every line for the product.
// A quantity of zero or less removes the lines entirely.
func (s *Store) UpdateCartQuantity(productID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.removeLinesLocked(productID)
		s.persistCart()
		return
	}

	for i, item := range s.cart {
		if item.ProductID == productID {
			s.cart[i].Quantity = quantity
		}
	}
	s.persistCart()
}

// ClearCart empties the cart.
func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = []domain.CartItem{}
	s.persistCart()
}

// Cart returns a copy of the current cart lines.
func (s *Store) Cart() []domain.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.CartItem, len(s.cart))
	copy(out, s.cart)
	return out
}

// CartTotal sums catalog price times quantity over every line. Lines whose
// product is missing from the catalog contribute zero.
func (s *Store) CartTotal() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total float64
	for _, item := range s.cart {
		total += s.catalog.Price(item.ProductID) * float64(item.Quantity)
	}
	return total
}

// CartItemsCount sums the quantities of all lines.
func (s *Store) CartItemsCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int
	for _, item := range s.cart {
		count += item.Quantity
	}
	return count
}

// CartProducts joins cart lines with the catalog, dropping lines whose
// product does not resolve.
func (s *Store) CartProducts() []domain.CartProduct {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.CartProduct, 0, len(s.cart))
	for _, item := range s.cart {
		if p, ok := s.catalog.Product(item.ProductID); ok {
			out = append(out, domain.CartProduct{Product: p, Item: item})
		}
	}
	return out
}

// AddToWishlist adds the product id. Adding an id already present is a
// no-op: the wishlist is a set.
func (s *Store) AddToWishlist(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.wishlist {
		if id == productID {
			return
		}
	}
	s.wishlist = append(s.wishlist, productID)
	s.persistWishlist()
}

// RemoveFromWishlist removes the product id if present.
func (s *Store) RemoveFromWishlist(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.wishlist[:0]
	removed := false
	for _, id := range s.wishlist {
		if id == productID {
			removed = true
			continue
		}
		kept = append(kept, id)
	}
	s.wishlist = kept
	if removed {
		s.persistWishlist()
	}
}

// IsInWishlist reports whether the product id is wishlisted.
func (s *Store) IsInWishlist(productID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.wishlist {
		if id == productID {
			return true
		}
	}
	return false
}

// Wishlist returns a copy of the wishlisted product ids.
func (s *Store) Wishlist() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.wishlist))
	copy(out, s.wishlist)
	return out
}

// WishlistProducts maps wishlist ids through the catalog, dropping ids
// that do not resolve.
func (s *Store) WishlistProducts() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Product, 0, len(s.wishlist))
	for _, id := range s.wishlist {
		if p, ok := s.catalog.Product(id); ok {
			out = append(out, p)
		}
	}
	return out
}

// Theme returns the current theme.
func (s *Store) Theme() domain.Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

// ToggleTheme flips the theme and notifies registered observers. Observers
// run outside the container's lock.
func (s *Store) ToggleTheme() domain.Theme {
	s.mu.Lock()
	s.theme = s.theme.Toggle()
	theme := s.theme
	s.persistTheme()
	observers := make([]func(domain.Theme), len(s.themeObservers))
	copy(observers, s.themeObservers)
	s.mu.Unlock()

	for _, fn := range observers {
		fn(theme)
	}
	return theme
}

// OnThemeChange registers an observer invoked after every theme change.
// This is how the presentation layer observes theme state without the
// container knowing anything about it.
func (s *Store) OnThemeChange(fn func(domain.Theme)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.themeObservers = append(s.themeObservers, fn)
}

// User returns the current profile, or nil when signed out.
func (s *Store) User() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// SetUser replaces the profile wholesale. Passing nil signs the user out.
func (s *Store) SetUser(user *domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user != nil {
		u := *user
		user = &u
	}
	s.user = user
	s.persistUser()
}

// Orders returns the order history, most recent first.
func (s *Store) Orders() []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// AddOrder prepends the order to the history.
func (s *Store) AddOrder(order domain.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append([]domain.Order{order}, s.orders...)
	s.persistOrders()
}

// Product looks the id up in the catalog.
func (s *Store) Product(id string) (domain.Product, bool) {
	return s.catalog.Product(id)
}

// Catalog exposes the static catalog collaborator.
func (s *Store) Catalog() *catalog.Catalog {
	return s.catalog
}

// Close flushes every slot. The container must not be used afterwards.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.persistCart()
	s.persistWishlist()
	s.persistTheme()
	s.persistUser()
	s.persistOrders()
	return s.slots.Close()
}

// persist helpers run under the write lock. Slot writes are assumed not to
// fail in normal operation; failures are logged and the in-memory state
// stays authoritative for the rest of the session.

func (s *Store) persistCart() {
	s.persistSlot(storage.SlotCart, s.cart)
}

func (s *Store) persistWishlist() {
	s.persistSlot(storage.SlotWishlist, s.wishlist)
}

func (s *Store) persistTheme() {
	s.persistSlot(storage.SlotTheme, s.theme)
}

func (s *Store) persistUser() {
	s.persistSlot(storage.SlotUser, s.user)
}

func (s *Store) persistOrders() {
	s.persistSlot(storage.SlotOrders, s.orders)
}

func (s *Store) persistSlot(key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		s.logger.Error("marshal slot failed", zap.String("slot", key), zap.Error(err))
		return
	}
	if err := s.slots.Write(context.Background(), key, data); err != nil {
		s.logger.Error("persist slot failed", zap.String("slot", key), zap.Error(err))
	}
}
