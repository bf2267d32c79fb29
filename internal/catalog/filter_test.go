package catalog

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/MitulSachdeva/ShopFlow/internal/domain"
)

func ids(products []domain.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestSearch(t *testing.T) {
	products := seedProducts()

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{
			name:   "zero filter matches everything in catalog order",
			filter: Filter{},
			want:   []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12"},
		},
		{
			name:   "query matches name and description case-insensitively",
			filter: Filter{Query: "WaTcH"},
			want:   []string{"4", "12"},
		},
		{
			name: "filters are conjunctive",
			filter: Filter{
				Categories: []domain.Category{domain.CategoryElectronics},
				Brands:     []string{"Novatech"},
			},
			want: []string{"2", "7"},
		},
		{
			name:   "price range is inclusive on both ends",
			filter: Filter{MinPrice: 129.99, MaxPrice: 249.99},
			want:   []string{"3", "4", "6", "7", "11", "12"},
		},
		{
			name:   "zero max price means unbounded",
			filter: Filter{MinPrice: 1000},
			want:   []string{"2"},
		},
		{
			name:   "query with no match yields empty result",
			filter: Filter{Query: "zeppelin"},
			want:   []string{},
		},
		{
			name:   "newest reverses catalog order of the matches",
			filter: Filter{Categories: []domain.Category{domain.CategoryFashion}, Sort: SortNewest},
			want:   []string{"12", "8", "3"},
		},
		{
			name:   "price low ascending",
			filter: Filter{Sort: SortPriceLow},
			want:   []string{"10", "9", "8", "6", "11", "7", "12", "3", "4", "1", "5", "2"},
		},
		{
			name:   "price high descending keeps tie order stable",
			filter: Filter{Sort: SortPriceHigh},
			want:   []string{"2", "5", "1", "4", "3", "12", "7", "6", "11", "8", "9", "10"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Search(products, tt.filter))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Search() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// Equal sort keys must preserve catalog order. Products 6 and 11 share a
// price, so 6 has to come first under both price sorts.
func TestSearchStableTieBreak(t *testing.T) {
	products := seedProducts()

	for _, key := range []SortKey{SortPriceLow, SortPriceHigh} {
		got := Search(products, Filter{MinPrice: 129.99, MaxPrice: 129.99, Sort: key})
		want := []string{"6", "11"}
		if diff := cmp.Diff(want, ids(got)); diff != "" {
			t.Errorf("sort %q tie order mismatch (-want +got):\n%s", key, diff)
		}
	}
}

// Above 150 every price is distinct, so the two price sorts must be exact
// reverses of each other.
func TestSearchPriceSortsReverseWithoutTies(t *testing.T) {
	products := seedProducts()

	low := ids(Search(products, Filter{MinPrice: 150, Sort: SortPriceLow}))
	high := ids(Search(products, Filter{MinPrice: 150, Sort: SortPriceHigh}))

	reversed := make([]string, len(high))
	for i, id := range high {
		reversed[len(high)-1-i] = id
	}
	if diff := cmp.Diff(low, reversed); diff != "" {
		t.Errorf("price sorts are not reverses (-low +reversed-high):\n%s", diff)
	}
}

func TestSearchDoesNotMutateInput(t *testing.T) {
	products := seedProducts()
	original := seedProducts()

	Search(products, Filter{Sort: SortPriceHigh})
	Search(products, Filter{Query: "watch", Sort: SortNewest})

	if diff := cmp.Diff(original, products); diff != "" {
		t.Errorf("input slice was mutated (-want +got):\n%s", diff)
	}
}

func TestSearchIdempotent(t *testing.T) {
	products := seedProducts()
	f := Filter{Categories: []domain.Category{domain.CategoryElectronics}, Sort: SortPriceLow}

	first := ids(Search(products, f))
	second := ids(Search(products, f))
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated search differs (-first +second):\n%s", diff)
	}
}

func TestSortKeyValid(t *testing.T) {
	for _, key := range []SortKey{SortFeatured, SortPriceLow, SortPriceHigh, SortRating, SortNewest} {
		if !key.Valid() {
			t.Errorf("SortKey(%q).Valid() = false, want true", key)
		}
	}
	if SortKey("price_asc").Valid() {
		t.Error(`SortKey("price_asc").Valid() = true, want false`)
	}
}
