package search

import (
	"strings"
)

// Match reports whether any of values contains query, ignoring case.
// An empty query matches everything.
func Match(query string, values ...string) bool {
	if query == "" {
		return true
	}
	query = strings.ToLower(query)
	for _, value := range values {
		if strings.Contains(strings.ToLower(value), query) {
			return true
		}
	}
	return false
}

// Filter returns the items for which fields yields a value matching query.
func Filter[T any](items []T, query string, fields func(item T) []string) []T {
	if query == "" {
		return items
	}
	var filtered []T
	for _, item := range items {
		if Match(query, fields(item)...) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
