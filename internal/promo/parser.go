package promo

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Kind discriminates promotion rule variants.
type Kind string

const (
	// KindNone marks products without special pricing.
	KindNone Kind = "none"
	// KindPercentOff applies a percentage discount once a minimum quantity is reached.
	KindPercentOff Kind = "percent_off"
	// KindBundlePrice charges a fixed price for every full bundle of units.
	KindBundlePrice Kind = "bundle_price"
)

// Rule captures a structured discount policy derived from a promotional annotation.
type Rule struct {
	Kind        Kind
	MinQty      int
	Percent     int64
	BundleQty   int
	BundlePrice decimal.Decimal
}

// None is the rule for products without a recognised promotion.
var None = Rule{Kind: KindNone}

type pattern struct {
	re    *regexp.Regexp
	build func(groups []string) (Rule, bool)
}

// Patterns are tried in order and only the first match is honoured:
// percent-off before bundle price. New promotion shapes slot in here
// without touching the calculator.
var patterns = []pattern{
	{
		// e.g. "2 ar daugiau su -40%"
		re: regexp.MustCompile(`^(\d+)\s*(?:ar\s+daugiau\s+)?su\s*-?\s*(\d+)\s*%`),
		build: func(g []string) (Rule, bool) {
			minQty, err := strconv.Atoi(g[1])
			if err != nil || minQty < 1 {
				return None, false
			}
			percent, err := strconv.ParseInt(g[2], 10, 64)
			if err != nil || percent < 0 || percent > 100 {
				return None, false
			}
			return Rule{Kind: KindPercentOff, MinQty: minQty, Percent: percent}, true
		},
	},
	{
		// e.g. "3 už 2.39"
		re: regexp.MustCompile(`^(\d+)\s*už\s*(\d+(?:\.\d{1,2})?)`),
		build: func(g []string) (Rule, bool) {
			bundleQty, err := strconv.Atoi(g[1])
			if err != nil || bundleQty < 1 {
				return None, false
			}
			price, err := decimal.NewFromString(g[2])
			if err != nil || price.IsNegative() {
				return None, false
			}
			return Rule{Kind: KindBundlePrice, BundleQty: bundleQty, BundlePrice: price}, true
		},
	},
}

var dashReplacer = strings.NewReplacer("–", "-", "−", "-", "—", "-")

// Parse converts a free-text promotional annotation into a Rule.
// Unrecognised or empty text degrades to None; Parse never fails and is a
// pure function of its input.
func Parse(text string) Rule {
	s := normalize(text)
	if s == "" {
		return None
	}
	for _, p := range patterns {
		g := p.re.FindStringSubmatch(s)
		if g == nil {
			continue
		}
		rule, ok := p.build(g)
		if !ok {
			return None
		}
		return rule
	}
	return None
}

func normalize(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = dashReplacer.Replace(s)
	s = strings.ReplaceAll(s, ",", ".")
	s = strings.TrimSuffix(s, "€")
	return strings.TrimSpace(s)
}
