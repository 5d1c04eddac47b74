package catalog

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Martynas09/shop-browser/internal/promo"
)

// Shop identifies one of the fixed retailer sources.
type Shop string

const (
	ShopLidl    Shop = "lidl"
	ShopBarbora Shop = "barbora"
)

// Shops lists the catalog sources in display order.
func Shops() []Shop {
	return []Shop{ShopLidl, ShopBarbora}
}

// ParseShop resolves a shop tag, reporting whether it is known.
func ParseShop(value string) (Shop, bool) {
	switch Shop(strings.ToLower(strings.TrimSpace(value))) {
	case ShopLidl:
		return ShopLidl, true
	case ShopBarbora:
		return ShopBarbora, true
	default:
		return "", false
	}
}

// Product is an immutable catalog entry. The loader assigns the
// shop-qualified identifier before anything else sees the product.
type Product struct {
	ID        string
	Shop      Shop
	Title     string
	Price     *decimal.Decimal
	Price2    string
	ExtraInfo string
	ImageURL  string
}

// PromoText returns the effective promotional annotation: the secondary
// price when present, else the extra info.
func (p Product) PromoText() string {
	if p.Price2 != "" {
		return p.Price2
	}
	return p.ExtraInfo
}

// Rule parses the product's promotional annotation into a discount rule.
func (p Product) Rule() promo.Rule {
	return promo.Parse(p.PromoText())
}

// UnitPrice returns the product price, zero when unknown.
func (p Product) UnitPrice() decimal.Decimal {
	if p.Price == nil {
		return decimal.Zero
	}
	return *p.Price
}
