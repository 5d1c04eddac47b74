package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/Martynas09/shop-browser/internal/promo"
)

// Line describes a basket line used for subtotal calculation.
type Line struct {
	UnitPrice decimal.Decimal
	Qty       int
	Rule      promo.Rule
	Checked   bool
}

var hundred = decimal.NewFromInt(100)

// LineTotal computes the amount owed for one line given its unit price,
// quantity and promotion rule. The result is exact; rounding to two places
// happens only in Display so aggregation never compounds rounding error.
func LineTotal(unitPrice decimal.Decimal, qty int, rule promo.Rule) decimal.Decimal {
	if qty <= 0 || unitPrice.IsNegative() {
		return decimal.Zero
	}
	quantity := decimal.NewFromInt(int64(qty))
	full := unitPrice.Mul(quantity)

	switch rule.Kind {
	case promo.KindPercentOff:
		// The discount never applies partially: below the threshold the
		// line is billed at full price.
		if qty < rule.MinQty {
			return full
		}
		factor := hundred.Sub(decimal.NewFromInt(rule.Percent)).Div(hundred)
		return full.Mul(factor)
	case promo.KindBundlePrice:
		if rule.BundleQty < 1 {
			return full
		}
		bundles := int64(qty / rule.BundleQty)
		remainder := int64(qty % rule.BundleQty)
		return rule.BundlePrice.Mul(decimal.NewFromInt(bundles)).
			Add(unitPrice.Mul(decimal.NewFromInt(remainder)))
	default:
		return full
	}
}

// Subtotal sums line totals over all unchecked lines; checked lines count
// as already bought and are excluded from the running total.
func Subtotal(lines []Line) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		if line.Checked {
			continue
		}
		total = total.Add(LineTotal(line.UnitPrice, line.Qty, line.Rule))
	}
	return total
}

// Display renders an amount with exactly two fractional digits.
func Display(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}
