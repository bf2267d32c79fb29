package httpapi

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MitulSachdeva/ShopFlow/internal/catalog"
	"github.com/MitulSachdeva/ShopFlow/internal/domain"
	"github.com/MitulSachdeva/ShopFlow/internal/search"
)

type ProductHandler struct {
	search  *search.Service
	catalog *catalog.Catalog
	timeout time.Duration
}

func NewProductHandler(s *search.Service, c *catalog.Catalog, timeout time.Duration) *ProductHandler {
	return &ProductHandler{
		search:  s,
		catalog: c,
		timeout: timeout,
	}
}

type ProductResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	Brand       string   `json:"brand"`
	Image       string   `json:"image"`
	Images      []string `json:"images"`
	Rating      float64  `json:"rating"`
	ReviewCount int      `json:"review_count"`
	InStock     bool     `json:"in_stock"`
	Features    []string `json:"features,omitempty"`
}

type ProductsResponse struct {
	Products []ProductResponse `json:"products"`
	Total    int               `json:"total"`
}

type ReviewResponse struct {
	ID           string  `json:"id"`
	ProductID    string  `json:"product_id"`
	Rating       float64 `json:"rating"`
	Comment      string  `json:"comment"`
	UserName     string  `json:"user_name"`
	UserInitials string  `json:"user_initials"`
	CreatedAt    string  `json:"created_at"`
}

// GET /api/v1/products
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	filter, err := parseFilter(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_filter", err.Error())
		return
	}

	products, err := h.search.Search(ctx, filter)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "search failed")
		return
	}

	resp := ProductsResponse{
		Products: make([]ProductResponse, 0, len(products)),
		Total:    h.catalog.Len(),
	}
	for _, p := range products {
		resp.Products = append(resp.Products, convertProduct(p))
	}

	respondJSON(w, http.StatusOK, resp)
}

// GET /api/v1/products/{product_id}
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "product_id")

	p, ok := h.catalog.Product(productID)
	if !ok {
		respondError(w, http.StatusNotFound, "not_found", "product not found")
		return
	}

	respondJSON(w, http.StatusOK, convertProduct(p))
}

// GET /api/v1/products/{product_id}/reviews
func (h *ProductHandler) Reviews(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "product_id")

	if _, ok := h.catalog.Product(productID); !ok {
		respondError(w, http.StatusNotFound, "not_found", "product not found")
		return
	}

	reviews := h.catalog.Reviews(productID)
	resp := make([]ReviewResponse, 0, len(reviews))
	for _, rv := range reviews {
		resp = append(resp, ReviewResponse{
			ID:           rv.ID,
			ProductID:    rv.ProductID,
			Rating:       rv.Rating,
			Comment:      rv.Comment,
			UserName:     rv.UserName,
			UserInitials: rv.UserInitials,
			CreatedAt:    rv.CreatedAt,
		})
	}

	respondJSON(w, http.StatusOK, resp)
}

// GET /api/v1/categories
func (h *ProductHandler) Categories(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.catalog.Categories())
}

// GET /api/v1/brands
func (h *ProductHandler) Brands(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.catalog.Brands())
}

func parseFilter(r *http.Request) (catalog.Filter, error) {
	q := r.URL.Query()

	f := catalog.Filter{
		Query:    q.Get("q"),
		MaxPrice: catalog.DefaultMaxPrice,
		Sort:     catalog.SortFeatured,
	}

	for _, c := range splitParam(q.Get("category")) {
		cat := domain.Category(c)
		if !cat.Valid() {
			return f, errInvalidParam("category", c)
		}
		f.Categories = append(f.Categories, cat)
	}

	f.Brands = splitParam(q.Get("brand"))

	if v := q.Get("min_price"); v != "" {
		min, err := strconv.ParseFloat(v, 64)
		if err != nil || min < 0 {
			return f, errInvalidParam("min_price", v)
		}
		f.MinPrice = min
	}
	if v := q.Get("max_price"); v != "" {
		max, err := strconv.ParseFloat(v, 64)
		if err != nil || max < 0 {
			return f, errInvalidParam("max_price", v)
		}
		f.MaxPrice = max
	}

	if v := q.Get("sort"); v != "" {
		key := catalog.SortKey(v)
		if !key.Valid() {
			return f, errInvalidParam("sort", v)
		}
		f.Sort = key
	}

	return f, nil
}

func splitParam(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

type paramError struct {
	name  string
	value string
}

func (e paramError) Error() string {
	return "invalid value " + strconv.Quote(e.value) + " for parameter " + e.name
}

func errInvalidParam(name, value string) error {
	return paramError{name: name, value: value}
}

func convertProduct(p domain.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category.String(),
		Brand:       p.Brand,
		Image:       p.Image,
		Images:      p.Images,
		Rating:      p.Rating,
		ReviewCount: p.ReviewCount,
		InStock:     p.InStock,
		Features:    p.Features,
	}
}
