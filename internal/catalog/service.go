package catalog

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/Martynas09/shop-browser/internal/common"
	"github.com/Martynas09/shop-browser/internal/obs"
	"github.com/Martynas09/shop-browser/internal/pricing"
	"github.com/Martynas09/shop-browser/internal/search"
)

// Service serves the in-memory catalog: ranked search, pagination, lookup.
type Service struct {
	products     []Product
	byID         map[string]Product
	docs         []search.Doc
	defaultLimit int
	maxLimit     int
}

// ServiceConfig groups Service dependencies.
type ServiceConfig struct {
	Products     []Product
	DefaultLimit int
	MaxLimit     int
}

// ListParams captures filters for product listing.
type ListParams struct {
	Query string
	Sort  search.Sort
	Page  int
	Limit int
}

// ProductListItem represents an entry in list responses.
type ProductListItem struct {
	ID        string  `json:"id"`
	Shop      string  `json:"shop"`
	Title     string  `json:"title"`
	Price     *string `json:"price,omitempty"`
	PromoText string  `json:"promoText,omitempty"`
	PromoKind string  `json:"promoKind"`
	ImageURL  string  `json:"imageUrl,omitempty"`
}

// ProductListResult contains list data and pagination metadata.
type ProductListResult struct {
	Items []ProductListItem
	Total int
	Page  int
	Limit int
}

// NewService constructs a Service instance.
func NewService(cfg ServiceConfig) (*Service, error) {
	if len(cfg.Products) == 0 {
		return nil, errors.New("catalog: products are required")
	}
	defaultLimit := cfg.DefaultLimit
	if defaultLimit < 1 {
		defaultLimit = 16
	}
	maxLimit := cfg.MaxLimit
	if maxLimit < 1 {
		maxLimit = 100
	}
	if defaultLimit > maxLimit {
		defaultLimit = maxLimit
	}
	byID := make(map[string]Product, len(cfg.Products))
	docs := make([]search.Doc, 0, len(cfg.Products))
	for _, p := range cfg.Products {
		byID[p.ID] = p
		docs = append(docs, search.Doc{Title: p.Title, Shop: string(p.Shop), Price: p.UnitPrice()})
	}
	if obs.CatalogProducts != nil {
		for shop, count := range countByShop(cfg.Products) {
			obs.CatalogProducts.WithLabelValues(string(shop)).Set(float64(count))
		}
	}
	return &Service{
		products:     cfg.Products,
		byID:         byID,
		docs:         docs,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
	}, nil
}

// ParseListParams normalises raw query values into strongly typed filters.
func (s *Service) ParseListParams(values url.Values) (ListParams, error) {
	params := ListParams{
		Page:  1,
		Limit: s.defaultLimit,
	}
	params.Query = strings.TrimSpace(values.Get("q"))
	params.Sort = search.ParseSort(values.Get("sort"))

	if v := strings.TrimSpace(values.Get("page")); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil || page < 1 {
			return params, badRequest("page", "page must be a positive integer", err)
		}
		params.Page = page
	}
	if v := strings.TrimSpace(values.Get("limit")); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 1 {
			return params, badRequest("limit", "limit must be a positive integer", err)
		}
		if limit > s.maxLimit {
			limit = s.maxLimit
		}
		params.Limit = limit
	}
	return params, nil
}

// ListProducts ranks the catalog for the query and returns one page.
func (s *Service) ListProducts(params ListParams) ProductListResult {
	ranked := search.Rank(s.docs, params.Query, params.Sort)
	if obs.SearchQueriesTotal != nil && params.Query != "" {
		outcome := "hit"
		if len(ranked) == 0 {
			outcome = "empty"
		}
		obs.SearchQueriesTotal.WithLabelValues(outcome).Inc()
	}

	start, end := common.PageSlice(params.Page, params.Limit, len(ranked))
	items := make([]ProductListItem, 0, end-start)
	for _, idx := range ranked[start:end] {
		items = append(items, listItem(s.products[idx]))
	}
	return ProductListResult{
		Items: items,
		Total: len(ranked),
		Page:  params.Page,
		Limit: params.Limit,
	}
}

// Get looks up a product by its shop-qualified identifier.
func (s *Service) Get(id string) (Product, bool) {
	p, ok := s.byID[id]
	return p, ok
}

// CountByShop reports the number of loaded products per shop.
func (s *Service) CountByShop() map[Shop]int {
	return countByShop(s.products)
}

// Size reports the total number of loaded products.
func (s *Service) Size() int {
	return len(s.products)
}

func countByShop(products []Product) map[Shop]int {
	counts := make(map[Shop]int)
	for _, p := range products {
		counts[p.Shop]++
	}
	return counts
}

func listItem(p Product) ProductListItem {
	item := ProductListItem{
		ID:        p.ID,
		Shop:      string(p.Shop),
		Title:     p.Title,
		PromoText: p.PromoText(),
		PromoKind: string(p.Rule().Kind),
		ImageURL:  p.ImageURL,
	}
	if p.Price != nil {
		display := pricing.Display(*p.Price)
		item.Price = &display
	}
	return item
}

func badRequest(field, message string, err error) *common.AppError {
	return &common.AppError{
		Code:       "BAD_REQUEST",
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
		Err:        err,
		Details: map[string]any{
			"field": field,
		},
	}
}
