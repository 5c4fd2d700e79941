package services

import "strings"

// Filter narrows services to those matching a category and a search
// query, with the same semantics as the product filter: "all" or empty
// category passes everything, the query matches title or description
// case-insensitively, and input order is preserved.
func Filter(items []Service, category, query string) []Service {
	q := strings.ToLower(strings.TrimSpace(query))

	out := make([]Service, 0, len(items))
	for _, s := range items {
		if category != "" && category != "all" && s.Category != category {
			continue
		}
		if q != "" && !matchesQuery(s, q) {
			continue
		}
		out = append(out, s)
	}
	return out
}

func matchesQuery(s Service, q string) bool {
	if strings.Contains(strings.ToLower(s.Title), q) {
		return true
	}
	return s.Description != nil && strings.Contains(strings.ToLower(*s.Description), q)
}
