package basket

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	validator "github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/Martynas09/shop-browser/internal/catalog"
	"github.com/Martynas09/shop-browser/internal/common"
	"github.com/Martynas09/shop-browser/internal/pricing"
)

// Handler wires the basket service to HTTP.
type Handler struct {
	Svc      *Service
	Catalog  *catalog.Service
	Validate *validator.Validate
}

// ViewLine is one basket line joined with its catalog product.
type ViewLine struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Qty       int    `json:"qty"`
	Checked   bool   `json:"checked"`
	UnitPrice string `json:"unitPrice"`
	LineTotal string `json:"lineTotal"`
	PromoText string `json:"promoText,omitempty"`
	ImageURL  string `json:"imageUrl,omitempty"`
}

// ViewShop groups a shop's lines with their running subtotal. Checked lines
// stay visible but no longer count towards the subtotal.
type ViewShop struct {
	Shop     string     `json:"shop"`
	Lines    []ViewLine `json:"lines"`
	Subtotal string     `json:"subtotal"`
}

// View is the full basket as rendered to clients.
type View struct {
	Shops []ViewShop `json:"shops"`
	Count int        `json:"count"`
	Total string     `json:"total"`
}

// Get handles GET /api/v1/basket.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	if h.Svc == nil || h.Catalog == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "basket service not configured", nil)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": h.view(h.Svc.Snapshot())})
}

// AddItem handles POST /api/v1/basket/items. The product determines which
// shop's basket the line lands in.
func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	if h.Svc == nil || h.Catalog == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "basket service not configured", nil)
		return
	}
	var payload struct {
		ProductID string `json:"productId" validate:"required"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid JSON body", nil)
		return
	}
	if err := h.Validate.Struct(payload); err != nil {
		common.JSONError(w, http.StatusBadRequest, "VALIDATION", "productId is required", nil)
		return
	}
	product, ok := h.Catalog.Get(payload.ProductID)
	if !ok {
		common.JSONError(w, http.StatusNotFound, "NOT_FOUND", "product not found", nil)
		return
	}
	next, err := h.Svc.Add(r.Context(), string(product.Shop), product.ID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	common.JSON(w, http.StatusCreated, map[string]any{"data": h.view(next)})
}

// RemoveItem handles DELETE /api/v1/basket/{shop}/items/{id}.
func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	shop, ok := h.shopParam(w, r)
	if !ok {
		return
	}
	next, err := h.Svc.Remove(r.Context(), shop, chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": h.view(next)})
}

// ToggleItem handles POST /api/v1/basket/{shop}/items/{id}/toggle.
func (h *Handler) ToggleItem(w http.ResponseWriter, r *http.Request) {
	shop, ok := h.shopParam(w, r)
	if !ok {
		return
	}
	next, err := h.Svc.ToggleChecked(r.Context(), shop, chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": h.view(next)})
}

// UpdateQuantity handles PUT /api/v1/basket/{shop}/items/{id}.
func (h *Handler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	shop, ok := h.shopParam(w, r)
	if !ok {
		return
	}
	var payload struct {
		Qty int `json:"qty" validate:"required,min=1"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid JSON body", nil)
		return
	}
	if err := h.Validate.Struct(payload); err != nil {
		common.JSONError(w, http.StatusBadRequest, "VALIDATION", "qty must be at least 1", nil)
		return
	}
	next, err := h.Svc.SetQuantity(r.Context(), shop, chi.URLParam(r, "id"), payload.Qty)
	if err != nil {
		h.writeError(w, err)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": h.view(next)})
}

// ClearChecked handles POST /api/v1/basket/{shop}/clear-checked.
func (h *Handler) ClearChecked(w http.ResponseWriter, r *http.Request) {
	shop, ok := h.shopParam(w, r)
	if !ok {
		return
	}
	next, err := h.Svc.ClearChecked(r.Context(), shop)
	if err != nil {
		h.writeError(w, err)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": h.view(next)})
}

func (h *Handler) shopParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	if h.Svc == nil || h.Catalog == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "basket service not configured", nil)
		return "", false
	}
	shop, ok := catalog.ParseShop(chi.URLParam(r, "shop"))
	if !ok {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "unknown shop", nil)
		return "", false
	}
	return string(shop), true
}

// view joins basket lines with their catalog products and prices each shop's
// list. Lines whose product has left the catalog render with a zero price so
// the basket never hides state the user put there.
func (h *Handler) view(b Basket) View {
	out := View{Shops: make([]ViewShop, 0, len(b)), Count: b.LineCount()}
	total := decimal.Zero
	for _, shop := range catalog.Shops() {
		lines := b.Lines(string(shop))
		if len(lines) == 0 {
			continue
		}
		viewLines := make([]ViewLine, 0, len(lines))
		priced := make([]pricing.Line, 0, len(lines))
		for _, line := range lines {
			var pl pricing.Line
			vl := ViewLine{ID: line.ID, Title: line.ID, Qty: line.Qty, Checked: line.Checked}
			if product, ok := h.Catalog.Get(line.ID); ok {
				vl.Title = product.Title
				vl.PromoText = product.PromoText()
				vl.ImageURL = product.ImageURL
				pl = pricing.Line{UnitPrice: product.UnitPrice(), Qty: line.Qty, Rule: product.Rule(), Checked: line.Checked}
			} else {
				pl = pricing.Line{Qty: line.Qty, Checked: line.Checked}
			}
			vl.UnitPrice = pricing.Display(pl.UnitPrice)
			vl.LineTotal = pricing.Display(pricing.LineTotal(pl.UnitPrice, pl.Qty, pl.Rule))
			viewLines = append(viewLines, vl)
			priced = append(priced, pl)
		}
		subtotal := pricing.Subtotal(priced)
		total = total.Add(subtotal)
		out.Shops = append(out.Shops, ViewShop{
			Shop:     string(shop),
			Lines:    viewLines,
			Subtotal: pricing.Display(subtotal),
		})
	}
	out.Total = pricing.Display(total)
	return out
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		common.JSONError(w, http.StatusNotFound, "NOT_FOUND", "basket line not found", nil)
	case errors.Is(err, ErrInvalidQuantity):
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "quantity must be at least 1", nil)
	default:
		common.WriteError(w, err)
	}
}
