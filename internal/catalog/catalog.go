package catalog

import (
	"errors"

	"github.com/MitulSachdeva/ShopFlow/internal/domain"
)

// ErrProductNotFound is returned by lookups for ids absent from the catalog.
var ErrProductNotFound = errors.New("product not found")

// CategoryInfo is a catalog category together with its product count.
type CategoryInfo struct {
	ID           domain.Category `json:"id"`
	Name         string          `json:"name"`
	ProductCount int             `json:"productCount"`
}

// Catalog is the static, read-only product dataset. It is built once at
// startup and never mutated afterwards, so lookups need no locking.
type Catalog struct {
	products []domain.Product
	reviews  []domain.Review

	byID     map[string]int
	byReview map[string][]domain.Review
	brands   []string
}

// New builds a catalog from the given products and reviews. Later products
// with a duplicate id shadow earlier ones in lookups but keep their catalog
// position for ordering.
func New(products []domain.Product, reviews []domain.Review) *Catalog {
	c := &Catalog{
		products: products,
		reviews:  reviews,
		byID:     make(map[string]int, len(products)),
		byReview: make(map[string][]domain.Review),
	}

	seen := make(map[string]bool)
	for i, p := range products {
		c.byID[p.ID] = i
		if !seen[p.Brand] {
			seen[p.Brand] = true
			c.brands = append(c.brands, p.Brand)
		}
	}
	for _, r := range reviews {
		c.byReview[r.ProductID] = append(c.byReview[r.ProductID], r)
	}
	return c
}

// Products returns all products in catalog order. Callers must not mutate
// the returned slice.
func (c *Catalog) Products() []domain.Product {
	return c.products
}

// Product looks up a product by id.
func (c *Catalog) Product(id string) (domain.Product, bool) {
	i, ok := c.byID[id]
	if !ok {
		return domain.Product{}, false
	}
	return c.products[i], true
}

// Price returns the catalog price for a product id, or 0 when the id does
// not resolve. Dangling references contribute nothing to derived totals.
func (c *Catalog) Price(id string) float64 {
	p, ok := c.Product(id)
	if !ok {
		return 0
	}
	return p.Price
}

// Reviews returns the reviews for a product in dataset order. Unknown ids
// yield an empty slice, not an error.
func (c *Catalog) Reviews(productID string) []domain.Review {
	return c.byReview[productID]
}

// Brands returns the distinct brand names in first-appearance order.
func (c *Catalog) Brands() []string {
	return c.brands
}

// Categories returns every category with its product count, including
// categories no product currently belongs to.
func (c *Catalog) Categories() []CategoryInfo {
	counts := make(map[domain.Category]int)
	for _, p := range c.products {
		counts[p.Category]++
	}

	infos := make([]CategoryInfo, 0, len(domain.Categories()))
	for _, cat := range domain.Categories() {
		infos = append(infos, CategoryInfo{
			ID:           cat,
			Name:         categoryName(cat),
			ProductCount: counts[cat],
		})
	}
	return infos
}

func categoryName(c domain.Category) string {
	switch c {
	case domain.CategoryElectronics:
		return "Electronics"
	case domain.CategoryFashion:
		return "Fashion"
	case domain.CategoryHome:
		return "Home"
	case domain.CategoryBooks:
		return "Books"
	case domain.CategorySports:
		return "Sports"
	}
	return string(c)
}

// Len returns the number of products in the catalog.
func (c *Catalog) Len() int {
	return len(c.products)
}
