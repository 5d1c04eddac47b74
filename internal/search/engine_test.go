package search_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/Martynas09/shop-browser/internal/search"
)

func docs() []search.Doc {
	return []search.Doc{
		{Title: "Vištienos filė", Shop: "lidl", Price: decimal.RequireFromString("4.99")},
		{Title: "Pienas 2.5%", Shop: "barbora", Price: decimal.RequireFromString("1.09")},
		{Title: "Varškė", Shop: "lidl", Price: decimal.RequireFromString("1.49")},
		{Title: "Duona", Shop: "barbora", Price: decimal.RequireFromString("0.99")},
	}
}

func TestNormalizeStripsDiacritics(t *testing.T) {
	require.Equal(t, "vistiena", search.Normalize("Vištiena"))
	require.Equal(t, "varske", search.Normalize("  VARŠKĖ "))
}

func TestEmptyQueryReturnsAllInOriginalOrder(t *testing.T) {
	ranked := search.Rank(docs(), "", search.SortRelevance)
	require.Equal(t, []int{0, 1, 2, 3}, ranked)
}

func TestNoMatchReturnsEmpty(t *testing.T) {
	ranked := search.Rank(docs(), "zzzNoMatch", search.SortRelevance)
	require.Empty(t, ranked)
}

func TestExactTitleOutranksSubstring(t *testing.T) {
	ranked := search.Rank(docs(), "pienas", search.SortRelevance)
	require.NotEmpty(t, ranked)
	require.Equal(t, 1, ranked[0])
}

func TestShopNameMatches(t *testing.T) {
	ranked := search.Rank(docs(), "lidl", search.SortRelevance)
	require.Len(t, ranked, 2)
	require.Equal(t, []int{0, 2}, ranked)
}

func TestSynonymMatch(t *testing.T) {
	// "pienas" is a dairy category key; "Varškė" is in its synonym set.
	ranked := search.Rank(docs(), "pienas", search.SortRelevance)
	require.Contains(t, ranked, 2)
}

func TestCategoryKeyDoubleCounts(t *testing.T) {
	// A category-key query earns both the synonym bonus and the category
	// bonus for the same document. Deliberate: the weights mirror the
	// shipped relevance behavior.
	score := search.Score("Varškė", "lidl", "pienas")
	require.Equal(t, 70+30, score)
}

func TestDiacriticInsensitiveQuery(t *testing.T) {
	ranked := search.Rank(docs(), "vistienos", search.SortRelevance)
	require.NotEmpty(t, ranked)
	require.Equal(t, 0, ranked[0])
}

func TestFuzzySubsequence(t *testing.T) {
	// Characters in order, not contiguous.
	score := search.Score("Duona", "barbora", "dna")
	require.Equal(t, 20, score)
}

func TestPriceSortOverridesRelevance(t *testing.T) {
	asc := search.Rank(docs(), "", search.SortPriceAsc)
	require.Equal(t, []int{3, 1, 2, 0}, asc)

	desc := search.Rank(docs(), "", search.SortPriceDesc)
	require.Equal(t, []int{0, 2, 1, 3}, desc)
}

func TestPriceSortStillFiltersByQuery(t *testing.T) {
	ranked := search.Rank(docs(), "lidl", search.SortPriceAsc)
	require.Equal(t, []int{2, 0}, ranked)
}

func TestScoreEmptyQueryUniform(t *testing.T) {
	require.Equal(t, 1, search.Score("anything", "lidl", ""))
}
