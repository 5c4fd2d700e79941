package products

import "strings"

// Filter narrows items to those matching a category and a search query.
// Category "all" (or empty) passes everything; the query is a
// case-insensitive substring match against title or description. A nil
// description never matches. Input order is preserved.
func Filter(items []Product, category, query string) []Product {
	q := strings.ToLower(strings.TrimSpace(query))

	out := make([]Product, 0, len(items))
	for _, p := range items {
		if category != "" && category != "all" && p.Category != category {
			continue
		}
		if q != "" && !matchesQuery(p, q) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchesQuery(p Product, q string) bool {
	if strings.Contains(strings.ToLower(p.Title), q) {
		return true
	}
	return p.Description != nil && strings.Contains(strings.ToLower(*p.Description), q)
}
