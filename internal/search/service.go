package search

import (
	"context"
	"encoding/json"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/MitulSachdeva/ShopFlow/internal/catalog"
	"github.com/MitulSachdeva/ShopFlow/internal/catalog/cache"
	"github.com/MitulSachdeva/ShopFlow/internal/domain"
)

// Service answers catalog searches, consulting the result cache before
// running the filter pipeline. The pipeline itself stays pure; caching is
// layered on top of it here.
type Service struct {
	catalog *catalog.Catalog
	cache   cache.SearchCache
	logger  *zap.Logger
	sfg     singleflight.Group // prevents cache stampede
}

func NewService(cat *catalog.Catalog, c cache.SearchCache, logger *zap.Logger) *Service {
	return &Service{
		catalog: cat,
		cache:   c,
		logger:  logger,
	}
}

// Search returns the filtered, sorted product subset for f. When no cache
// is configured every call runs the pipeline directly.
func (s *Service) Search(ctx context.Context, f catalog.Filter) ([]domain.Product, error) {
	if s.cache == nil {
		return catalog.Search(s.catalog.Products(), f), nil
	}

	// Collapse concurrent identical searches into one pipeline run.
	v, err, _ := s.sfg.Do(flightKey(f), func() (interface{}, error) {
		products, err := s.cache.Get(ctx, f)
		if err == nil {
			return products, nil
		}

		if !errors.Is(err, cache.ErrCacheMiss) {
			s.logger.Warn("search cache get failed", zap.Error(err))
		}

		products = catalog.Search(s.catalog.Products(), f)

		go func() {
			if errSet := s.cache.Set(context.Background(), f, products); errSet != nil {
				s.logger.Warn("search cache set failed", zap.Error(errSet))
			}
		}()

		return products, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]domain.Product), nil
}

func flightKey(f catalog.Filter) string {
	data, _ := json.Marshal(f)
	return string(data)
}
