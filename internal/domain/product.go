package domain

// Category is the fixed set of product categories in the catalog.
type Category string

const (
	CategoryElectronics Category = "electronics"
	CategoryFashion     Category = "fashion"
	CategoryHome        Category = "home"
	CategoryBooks       Category = "books"
	CategorySports      Category = "sports"
)

// Categories lists every valid category in display order.
func Categories() []Category {
	return []Category{
		CategoryElectronics,
		CategoryFashion,
		CategoryHome,
		CategoryBooks,
		CategorySports,
	}
}

func (c Category) Valid() bool {
	switch c {
	case CategoryElectronics, CategoryFashion, CategoryHome, CategoryBooks, CategorySports:
		return true
	}
	return false
}

func (c Category) String() string {
	return string(c)
}

// Product is a catalog entry. Products are static: they are loaded once and
// never created, mutated or destroyed at runtime.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Category    Category `json:"category"`
	Brand       string   `json:"brand"`
	Image       string   `json:"image"`
	Images      []string `json:"images"`
	Rating      float64  `json:"rating"`
	ReviewCount int      `json:"reviewCount"`
	InStock     bool     `json:"inStock"`
	Features    []string `json:"features,omitempty"`
}
