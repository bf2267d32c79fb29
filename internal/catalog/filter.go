package catalog

import (
	"sort"
	"strings"

	"github.com/MitulSachdeva/ShopFlow/internal/domain"
)

// SortKey selects the ordering of search results.
type SortKey string

const (
	SortFeatured  SortKey = "featured"   // stable catalog order
	SortPriceLow  SortKey = "price-low"  // ascending price
	SortPriceHigh SortKey = "price-high" // descending price
	SortRating    SortKey = "rating"     // descending rating
	SortNewest    SortKey = "newest"     // reverse catalog order
)

func (k SortKey) Valid() bool {
	switch k {
	case SortFeatured, SortPriceLow, SortPriceHigh, SortRating, SortNewest:
		return true
	}
	return false
}

// DefaultMaxPrice is the upper bound used when a filter leaves MaxPrice unset.
const DefaultMaxPrice = 3000

// Filter holds the parameters of one catalog search. The zero value matches
// every product (with MaxPrice interpreted as unbounded) in featured order.
type Filter struct {
	Query      string            `json:"query"`
	Categories []domain.Category `json:"categories"`
	Brands     []string          `json:"brands"`
	MinPrice   float64           `json:"minPrice"`
	MaxPrice   float64           `json:"maxPrice"`
	Sort       SortKey           `json:"sort"`
}

// Search returns the products matching the filter, sorted by its sort key.
// Filtering happens before sorting; every predicate is conjunctive. The
// input slice is never mutated and the call is free of side effects, so it
// is safe to re-invoke with the same arguments.
func Search(products []domain.Product, f Filter) []domain.Product {
	query := strings.ToLower(f.Query)

	matched := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Name), query) &&
			!strings.Contains(strings.ToLower(p.Description), query) {
			continue
		}
		if len(f.Categories) > 0 && !containsCategory(f.Categories, p.Category) {
			continue
		}
		if len(f.Brands) > 0 && !containsString(f.Brands, p.Brand) {
			continue
		}
		if p.Price < f.MinPrice {
			continue
		}
		if f.MaxPrice > 0 && p.Price > f.MaxPrice {
			continue
		}
		matched = append(matched, p)
	}

	// Stable sort: products with equal keys keep their catalog order.
	switch f.Sort {
	case SortPriceLow:
		sort.SliceStable(matched, func(i, j int) bool {
			return matched[i].Price < matched[j].Price
		})
	case SortPriceHigh:
		sort.SliceStable(matched, func(i, j int) bool {
			return matched[i].Price > matched[j].Price
		})
	case SortRating:
		sort.SliceStable(matched, func(i, j int) bool {
			return matched[i].Rating > matched[j].Rating
		})
	case SortNewest:
		// No timestamp on products yet; reverse catalog order stands in
		// for recency.
		for i, j := 0, len(matched)-1; i < j; i, j = i+1, j-1 {
			matched[i], matched[j] = matched[j], matched[i]
		}
	default:
		// featured: keep catalog order
	}

	return matched
}

func containsCategory(cats []domain.Category, c domain.Category) bool {
	for _, v := range cats {
		if v == c {
			return true
		}
	}
	return false
}

func containsString(vals []string, s string) bool {
	for _, v := range vals {
		if v == s {
			return true
		}
	}
	return false
}
