package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func writeFeed(t *testing.T, dir string, shop Shop, body string) {
	t.Helper()
	path := filepath.Join(dir, string(shop)+"-products.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
}

func TestLoadAssignsShopQualifiedIDs(t *testing.T) {
	dir := t.TempDir()
	writeFeed(t, dir, ShopLidl, `[
		{"title": "Pienas", "price": "1,09 €"},
		{"title": "Duona", "price": "0.89"}
	]`)
	writeFeed(t, dir, ShopBarbora, `[
		{"title": "Kava", "price": "4.99", "price_2": "2 su -30%"}
	]`)

	products, err := Load(dir)
	require.NoError(t, err)
	require.Len(t, products, 3)

	require.Equal(t, "lidl-0", products[0].ID)
	require.Equal(t, ShopLidl, products[0].Shop)
	require.Equal(t, "lidl-1", products[1].ID)
	require.Equal(t, "barbora-0", products[2].ID)
	require.Equal(t, "2 su -30%", products[2].PromoText())
}

func TestLoadMissingFeed(t *testing.T) {
	dir := t.TempDir()
	writeFeed(t, dir, ShopLidl, `[]`)

	_, err := Load(dir)
	require.Error(t, err)
}

func TestLoadMalformedFeed(t *testing.T) {
	dir := t.TempDir()
	writeFeed(t, dir, ShopLidl, `{"not": "an array"}`)
	writeFeed(t, dir, ShopBarbora, `[]`)

	_, err := Load(dir)
	require.Error(t, err)
}

func TestParsePrice(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		want    string
		wantNil bool
	}{
		{name: "plain", input: "1.09", want: "1.09"},
		{name: "comma separator", input: "1,09", want: "1.09"},
		{name: "currency suffix", input: "2,39 €", want: "2.39"},
		{name: "whitespace", input: "  0.89  ", want: "0.89"},
		{name: "empty", input: "", wantNil: true},
		{name: "garbage", input: "kaina nežinoma", wantNil: true},
		{name: "negative", input: "-1.00", wantNil: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParsePrice(tc.input)
			if tc.wantNil {
				require.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			require.True(t, got.Equal(decimal.RequireFromString(tc.want)), "got %s", got)
		})
	}
}
