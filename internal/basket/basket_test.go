package basket_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Martynas09/shop-browser/internal/basket"
)

func TestAddCollapsesDuplicates(t *testing.T) {
	b := basket.New()
	b = basket.Add(b, "lidl", "lidl-0")
	b = basket.Add(b, "lidl", "lidl-0")

	lines := b.Lines("lidl")
	require.Len(t, lines, 1)
	require.Equal(t, 2, lines[0].Qty)
	require.False(t, lines[0].Checked)
}

func TestAddPreservesInsertionOrder(t *testing.T) {
	b := basket.New()
	b = basket.Add(b, "lidl", "lidl-2")
	b = basket.Add(b, "lidl", "lidl-0")
	b = basket.Add(b, "lidl", "lidl-1")

	lines := b.Lines("lidl")
	require.Equal(t, []string{"lidl-2", "lidl-0", "lidl-1"}, []string{lines[0].ID, lines[1].ID, lines[2].ID})
}

func TestAddIsPure(t *testing.T) {
	original := basket.Add(basket.New(), "lidl", "lidl-0")
	_ = basket.Add(original, "lidl", "lidl-0")
	require.Equal(t, 1, original.Lines("lidl")[0].Qty)
}

func TestRemoveDeletesEmptyShopKey(t *testing.T) {
	b := basket.Add(basket.New(), "lidl", "lidl-0")
	b = basket.Remove(b, "lidl", "lidl-0")
	_, exists := b["lidl"]
	require.False(t, exists)
	require.Zero(t, b.LineCount())
}

func TestRemoveKeepsOtherLines(t *testing.T) {
	b := basket.New()
	b = basket.Add(b, "lidl", "lidl-0")
	b = basket.Add(b, "lidl", "lidl-1")
	b = basket.Remove(b, "lidl", "lidl-0")

	lines := b.Lines("lidl")
	require.Len(t, lines, 1)
	require.Equal(t, "lidl-1", lines[0].ID)
}

func TestRemoveThenReAddStartsFresh(t *testing.T) {
	b := basket.New()
	b = basket.Add(b, "lidl", "lidl-0")
	b = basket.Add(b, "lidl", "lidl-0")
	b = basket.Remove(b, "lidl", "lidl-0")
	b = basket.Add(b, "lidl", "lidl-0")

	lines := b.Lines("lidl")
	require.Len(t, lines, 1)
	require.Equal(t, 1, lines[0].Qty)
}

func TestToggleChecked(t *testing.T) {
	b := basket.Add(basket.New(), "barbora", "barbora-4")
	b = basket.ToggleChecked(b, "barbora", "barbora-4")
	line, ok := b.Find("barbora", "barbora-4")
	require.True(t, ok)
	require.True(t, line.Checked)

	b = basket.ToggleChecked(b, "barbora", "barbora-4")
	line, _ = b.Find("barbora", "barbora-4")
	require.False(t, line.Checked)
}

func TestClearCheckedRemovesOnlyCheckedLines(t *testing.T) {
	b := basket.New()
	b = basket.Add(b, "lidl", "lidl-0")
	b = basket.Add(b, "lidl", "lidl-1")
	b = basket.ToggleChecked(b, "lidl", "lidl-0")
	b = basket.ClearChecked(b, "lidl")

	lines := b.Lines("lidl")
	require.Len(t, lines, 1)
	require.Equal(t, "lidl-1", lines[0].ID)
}

func TestClearCheckedMayDeleteShopKey(t *testing.T) {
	b := basket.Add(basket.New(), "lidl", "lidl-0")
	b = basket.ToggleChecked(b, "lidl", "lidl-0")
	b = basket.ClearChecked(b, "lidl")
	_, exists := b["lidl"]
	require.False(t, exists)
}

func TestSetQuantity(t *testing.T) {
	b := basket.Add(basket.New(), "lidl", "lidl-0")
	b = basket.SetQuantity(b, "lidl", "lidl-0", 5)
	line, _ := b.Find("lidl", "lidl-0")
	require.Equal(t, 5, line.Qty)
}

func TestSetQuantityBelowOneIsNoOp(t *testing.T) {
	b := basket.Add(basket.New(), "lidl", "lidl-0")
	next := basket.SetQuantity(b, "lidl", "lidl-0", 0)
	require.Equal(t, b, next)
}

func TestJSONRoundTrip(t *testing.T) {
	b := basket.New()
	b = basket.Add(b, "lidl", "lidl-0")
	b = basket.Add(b, "lidl", "lidl-0")
	b = basket.Add(b, "barbora", "barbora-7")
	b = basket.ToggleChecked(b, "barbora", "barbora-7")

	data, err := json.Marshal(b)
	require.NoError(t, err)

	var restored basket.Basket
	require.NoError(t, json.Unmarshal(data, &restored))
	require.Equal(t, b, restored)
}
