package match

import (
	"regexp"
	"sort"
	"strings"

	"KasaMarket/app/api/assistant/internal/catalog"
)

var tokenSplit = regexp.MustCompile(`[^a-z0-9]+`)

// FindProductsByQuery ranks in-stock products by how many query tokens
// appear as substrings of the product's name, category or description.
// Zero-score products are dropped; ties keep catalog order. Plain keyword
// retrieval, deterministic by construction.
func FindProductsByQuery(snap *catalog.Snapshot, query string) []catalog.Product {
	tokens := Tokenize(query)
	if len(tokens) == 0 {
		return nil
	}

	type scored struct {
		product catalog.Product
		score   int
	}

	var hits []scored
	for _, p := range snap.Products() {
		if !p.InStock {
			continue
		}
		haystack := strings.ToLower(p.Name + " " + p.Category + " " + p.Description)
		score := 0
		for _, tok := range tokens {
			if strings.Contains(haystack, tok) {
				score++
			}
		}
		if score > 0 {
			hits = append(hits, scored{product: p, score: score})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].score > hits[j].score
	})

	results := make([]catalog.Product, 0, len(hits))
	for _, h := range hits {
		results = append(results, h.product)
	}
	return results
}

// Tokenize lowercases and splits on anything that is not a letter or digit.
func Tokenize(query string) []string {
	parts := tokenSplit.Split(strings.ToLower(query), -1)
	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			tokens = append(tokens, part)
		}
	}
	return tokens
}
