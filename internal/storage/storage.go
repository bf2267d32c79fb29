package storage

import (
	"context"
	"errors"
)

// Slot names. One durable slot per piece of storefront state.
const (
	SlotCart     = "cart"
	SlotWishlist = "wishlist"
	SlotTheme    = "theme"
	SlotUser     = "user"
	SlotOrders   = "orders"
)

// ErrSlotEmpty is returned when a slot has never been written.
var ErrSlotEmpty = errors.New("slot is empty")

// SlotStore persists one JSON document per named slot. Consumers define
// this interface; the sqlite implementation lives alongside it.
type SlotStore interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, value []byte) error
	Close() error
}
