package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
)

// record mirrors one entry of a shop's product feed.
type record struct {
	ImageURL  *string `json:"image_url"`
	Title     *string `json:"title"`
	Price     *string `json:"price"`
	Price2    *string `json:"price_2"`
	ExtraInfo *string `json:"extra_info"`
}

// Load reads every shop's product feed (<shop>-products.json) from dir and
// assigns shop-qualified identifiers in feed order.
func Load(dir string) ([]Product, error) {
	var all []Product
	for _, shop := range Shops() {
		path := filepath.Join(dir, fmt.Sprintf("%s-products.json", shop))
		products, err := loadFeed(path, shop)
		if err != nil {
			return nil, err
		}
		all = append(all, products...)
	}
	return all, nil
}

func loadFeed(path string, shop Shop) ([]Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read feed %s: %w", path, err)
	}
	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("catalog: decode feed %s: %w", path, err)
	}
	products := make([]Product, 0, len(records))
	for i, rec := range records {
		products = append(products, Product{
			ID:        fmt.Sprintf("%s-%d", shop, i),
			Shop:      shop,
			Title:     stringValue(rec.Title),
			Price:     ParsePrice(stringValue(rec.Price)),
			Price2:    stringValue(rec.Price2),
			ExtraInfo: stringValue(rec.ExtraInfo),
			ImageURL:  stringValue(rec.ImageURL),
		})
	}
	return products, nil
}

// ParsePrice converts a feed price string to a decimal. Comma decimal
// separators and a trailing currency symbol are tolerated; anything that
// still fails to parse means "price unknown" and yields nil.
func ParsePrice(value string) *decimal.Decimal {
	s := strings.TrimSpace(value)
	s = strings.ReplaceAll(s, ",", ".")
	s = strings.TrimSuffix(s, "€")
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return nil
	}
	return &d
}

func stringValue(value *string) string {
	if value == nil {
		return ""
	}
	return strings.TrimSpace(*value)
}
