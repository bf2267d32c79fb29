package catalog

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/MitulSachdeva/ShopFlow/internal/domain"
)

func TestCatalogLookup(t *testing.T) {
	c := Default()

	p, ok := c.Product("4")
	if !ok {
		t.Fatal(`Product("4") not found`)
	}
	if p.Name != "Pulse Smart Watch Series 5" {
		t.Errorf("Product(\"4\").Name = %q, want %q", p.Name, "Pulse Smart Watch Series 5")
	}

	if _, ok := c.Product("nope"); ok {
		t.Error(`Product("nope") found, want miss`)
	}
}

func TestCatalogPrice(t *testing.T) {
	c := Default()

	if got := c.Price("2"); got != 2499.99 {
		t.Errorf(`Price("2") = %v, want 2499.99`, got)
	}
	// Dangling ids price at zero so derived totals skip them.
	if got := c.Price("ghost"); got != 0 {
		t.Errorf(`Price("ghost") = %v, want 0`, got)
	}
}

func TestCatalogReviews(t *testing.T) {
	c := Default()

	reviews := c.Reviews("4")
	if len(reviews) != 2 {
		t.Fatalf(`Reviews("4") returned %d reviews, want 2`, len(reviews))
	}
	if reviews[0].ID != "review-3" || reviews[1].ID != "review-4" {
		t.Errorf("reviews out of dataset order: %s, %s", reviews[0].ID, reviews[1].ID)
	}

	if got := c.Reviews("nope"); len(got) != 0 {
		t.Errorf(`Reviews("nope") returned %d reviews, want 0`, len(got))
	}
}

func TestCatalogBrands(t *testing.T) {
	c := Default()

	want := []string{
		"AuraSound", "Novatech", "Harlow & Co", "Pulse", "BrewCraft",
		"Stride", "Inkwell Press", "Hearthstone", "Meridian",
	}
	if diff := cmp.Diff(want, c.Brands()); diff != "" {
		t.Errorf("Brands() mismatch (-want +got):\n%s", diff)
	}
}

func TestCatalogCategories(t *testing.T) {
	c := Default()

	counts := make(map[domain.Category]int)
	for _, info := range c.Categories() {
		counts[info.ID] = info.ProductCount
	}

	want := map[domain.Category]int{
		domain.CategoryElectronics: 4,
		domain.CategoryFashion:     3,
		domain.CategoryHome:        2,
		domain.CategoryBooks:       1,
		domain.CategorySports:      2,
	}
	if diff := cmp.Diff(want, counts); diff != "" {
		t.Errorf("category counts mismatch (-want +got):\n%s", diff)
	}
}

// Empty categories still show up with a zero count.
func TestCatalogCategoriesIncludesEmpty(t *testing.T) {
	c := New([]domain.Product{
		{ID: "1", Name: "Solo", Category: domain.CategoryBooks, Price: 10},
	}, nil)

	infos := c.Categories()
	if len(infos) != len(domain.Categories()) {
		t.Fatalf("Categories() returned %d entries, want %d", len(infos), len(domain.Categories()))
	}
	for _, info := range infos {
		wantCount := 0
		if info.ID == domain.CategoryBooks {
			wantCount = 1
		}
		if info.ProductCount != wantCount {
			t.Errorf("category %s count = %d, want %d", info.ID, info.ProductCount, wantCount)
		}
	}
}

func TestDefaultCatalogIsWellFormed(t *testing.T) {
	c := Default()

	if c.Len() == 0 {
		t.Fatal("default catalog is empty")
	}
	seen := make(map[string]bool)
	for _, p := range c.Products() {
		if p.ID == "" || p.Name == "" || p.Price <= 0 {
			t.Errorf("malformed seed product: %+v", p)
		}
		if !p.Category.Valid() {
			t.Errorf("product %s has invalid category %q", p.ID, p.Category)
		}
		if seen[p.ID] {
			t.Errorf("duplicate product id %s", p.ID)
		}
		seen[p.ID] = true
	}
	for _, r := range c.Reviews("1") {
		if r.ProductID != "1" {
			t.Errorf("review %s indexed under wrong product", r.ID)
		}
	}
}
