package cache

import (
	"context"
	"errors"

	"github.com/MitulSachdeva/ShopFlow/internal/catalog"
	"github.com/MitulSachdeva/ShopFlow/internal/domain"
)

// SearchCache holds materialized catalog search results keyed by filter.
type SearchCache interface {
	Get(ctx context.Context, f catalog.Filter) ([]domain.Product, error)
	Set(ctx context.Context, f catalog.Filter, products []domain.Product) error
	Flush(ctx context.Context) error
}

var ErrCacheMiss = errors.New("cache miss")
