package catalog

import (
	"net/http"
	"sort"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Martynas09/shop-browser/internal/common"
	"github.com/Martynas09/shop-browser/internal/search"
)

// Handler exposes public catalog endpoints.
type Handler struct {
	service *Service
}

// HandlerConfig configures the Handler dependencies.
type HandlerConfig struct {
	Service *Service
}

// NewHandler constructs a Handler.
func NewHandler(cfg HandlerConfig) *Handler {
	return &Handler{service: cfg.Service}
}

// Products handles GET /api/v1/products with search, sorting, and pagination.
func (h *Handler) Products(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "catalog service not configured", nil)
		return
	}
	params, err := h.service.ParseListParams(r.URL.Query())
	if err != nil {
		common.WriteError(w, err)
		return
	}
	result := h.service.ListProducts(params)
	w.Header().Set("X-Total-Count", strconv.Itoa(result.Total))
	common.JSON(w, http.StatusOK, map[string]any{
		"data":       result.Items,
		"pagination": common.NewPagination(result.Page, result.Limit, result.Total),
	})
}

// ProductDetail handles GET /api/v1/products/{id}.
func (h *Handler) ProductDetail(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "catalog service not configured", nil)
		return
	}
	id := chi.URLParam(r, "id")
	product, ok := h.service.Get(id)
	if !ok {
		common.JSONError(w, http.StatusNotFound, "NOT_FOUND", "product not found", nil)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": listItem(product)})
}

// Categories handles GET /api/v1/categories. The keys double as search
// queries: each expands to its synonym set when ranking.
func (h *Handler) Categories(w http.ResponseWriter, _ *http.Request) {
	keys := search.CategoryKeys()
	sort.Strings(keys)
	common.JSON(w, http.StatusOK, map[string]any{"data": keys})
}

// Shops handles GET /api/v1/shops.
func (h *Handler) Shops(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "catalog service not configured", nil)
		return
	}
	counts := h.service.CountByShop()
	rows := make([]map[string]any, 0, len(Shops()))
	for _, shop := range Shops() {
		rows = append(rows, map[string]any{
			"id":       string(shop),
			"products": counts[shop],
		})
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": rows})
}
