package promo_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/Martynas09/shop-browser/internal/promo"
)

func TestParsePercentOff(t *testing.T) {
	rule := promo.Parse("2 ar daugiau su –40%")
	require.Equal(t, promo.KindPercentOff, rule.Kind)
	require.Equal(t, 2, rule.MinQty)
	require.EqualValues(t, 40, rule.Percent)
}

func TestParsePercentOffWithoutFiller(t *testing.T) {
	rule := promo.Parse("3 su -25%")
	require.Equal(t, promo.KindPercentOff, rule.Kind)
	require.Equal(t, 3, rule.MinQty)
	require.EqualValues(t, 25, rule.Percent)
}

func TestParseBundlePrice(t *testing.T) {
	rule := promo.Parse("3 už 2.39")
	require.Equal(t, promo.KindBundlePrice, rule.Kind)
	require.Equal(t, 3, rule.BundleQty)
	require.True(t, rule.BundlePrice.Equal(decimal.RequireFromString("2.39")))
}

func TestParseBundlePriceCommaDecimal(t *testing.T) {
	rule := promo.Parse("2 UŽ 1,99 €")
	require.Equal(t, promo.KindBundlePrice, rule.Kind)
	require.Equal(t, 2, rule.BundleQty)
	require.True(t, rule.BundlePrice.Equal(decimal.RequireFromString("1.99")))
}

func TestParseEmptyYieldsNone(t *testing.T) {
	require.Equal(t, promo.None, promo.Parse(""))
	require.Equal(t, promo.None, promo.Parse("   "))
}

func TestParseUnrecognisedYieldsNone(t *testing.T) {
	for _, text := range []string{
		"tik su kortele",
		"naujiena",
		"akcija iki 09-30",
		"už 2.39", // bundle quantity missing
	} {
		require.Equal(t, promo.None, promo.Parse(text), "text %q", text)
	}
}

func TestParsePercentWinsOverBundle(t *testing.T) {
	// Ambiguous prefix resolves in priority order and only once.
	rule := promo.Parse("2 su -10% už 5.00")
	require.Equal(t, promo.KindPercentOff, rule.Kind)
}

func TestParseIsReferentiallyTransparent(t *testing.T) {
	first := promo.Parse("3 už 2.39")
	second := promo.Parse("3 už 2.39")
	require.Equal(t, first, second)
}
