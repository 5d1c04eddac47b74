package search

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Doc is the searchable projection of a catalog product.
type Doc struct {
	Title string
	Shop  string
	Price decimal.Decimal
}

// Sort selects the ordering of ranked results. Price sorting, when active,
// fully overrides relevance ordering.
type Sort int

const (
	SortRelevance Sort = iota
	SortPriceAsc
	SortPriceDesc
)

// ParseSort maps a query parameter to a Sort mode.
func ParseSort(value string) Sort {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "price:asc":
		return SortPriceAsc
	case "price:desc":
		return SortPriceDesc
	default:
		return SortRelevance
	}
}

// Score computes the relevance of a single document for a query.
// Signals accumulate; they never replace each other.
func Score(title, shop, query string) int {
	q := Normalize(query)
	if q == "" {
		return 1
	}
	return score(Normalize(title), Normalize(shop), q)
}

func score(title, shop, q string) int {
	total := 0
	if title == q {
		total += 100
	}
	if shop == q {
		total += 80
	}
	if strings.Contains(title, q) {
		total += 60
	}
	if strings.Contains(shop, q) {
		total += 40
	}
	for _, terms := range normalizedSynonyms {
		if containsTerm(terms, q) && anyTermInText(terms, title) {
			total += 70
		}
	}
	if subsequence(title, q) || subsequence(shop, q) {
		total += 20
	}
	if terms, ok := normalizedSynonyms[q]; ok && anyTermInText(terms, title) {
		total += 30
	}
	return total
}

// Rank scores every document against the query and returns the indices of
// matching documents ordered by the selected mode. The empty query matches
// everything with uniform minimal relevance, preserving original order.
// Zero-score documents are excluded entirely.
func Rank(docs []Doc, query string, mode Sort) []int {
	q := Normalize(query)
	ranked := make([]int, 0, len(docs))
	scores := make([]int, len(docs))
	for i, doc := range docs {
		s := 1
		if q != "" {
			s = score(Normalize(doc.Title), Normalize(doc.Shop), q)
		}
		if s <= 0 {
			continue
		}
		scores[i] = s
		ranked = append(ranked, i)
	}

	switch mode {
	case SortPriceAsc:
		sort.SliceStable(ranked, func(a, b int) bool {
			return docs[ranked[a]].Price.LessThan(docs[ranked[b]].Price)
		})
	case SortPriceDesc:
		sort.SliceStable(ranked, func(a, b int) bool {
			return docs[ranked[b]].Price.LessThan(docs[ranked[a]].Price)
		})
	default:
		// Stable: ties keep original catalog order.
		sort.SliceStable(ranked, func(a, b int) bool {
			return scores[ranked[a]] > scores[ranked[b]]
		})
	}
	return ranked
}

func containsTerm(terms []string, q string) bool {
	for _, term := range terms {
		if term == q {
			return true
		}
	}
	return false
}

func anyTermInText(terms []string, text string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}

// subsequence reports whether every character of q appears in text in
// order, not necessarily contiguously.
func subsequence(text, q string) bool {
	if q == "" {
		return true
	}
	runes := []rune(q)
	j := 0
	for _, r := range text {
		if r == runes[j] {
			j++
			if j == len(runes) {
				return true
			}
		}
	}
	return false
}
