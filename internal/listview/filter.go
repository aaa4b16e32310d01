package listview

import (
	"strings"
)

// Predicate reports whether a record survives one filter condition.
type Predicate[T any] func(T) bool

// Filter returns the subset of records satisfying every predicate
// (AND semantics). The result is a new slice; order is preserved.
func Filter[T any](records []T, preds ...Predicate[T]) []T {
	out := make([]T, 0, len(records))
	for _, rec := range records {
		ok := true
		for _, p := range preds {
			if !p(rec) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, rec)
		}
	}
	return out
}

// QueryPredicate builds the free-text condition: a record matches when the
// query is a case-insensitive substring of any of its searchable fields.
// An empty query matches everything.
func QueryPredicate[T any](query string, searchFields func(T) []string) Predicate[T] {
	q := strings.ToLower(strings.TrimSpace(query))
	return func(rec T) bool {
		if q == "" {
			return true
		}
		for _, field := range searchFields(rec) {
			if strings.Contains(strings.ToLower(field), q) {
				return true
			}
		}
		return false
	}
}

// EqualsPredicate builds a categorical condition: exact equality against the
// selected value. An empty selection means the filter is inactive.
func EqualsPredicate[T any](selected string, fieldValue func(T) string) Predicate[T] {
	return func(rec T) bool {
		if selected == "" {
			return true
		}
		return fieldValue(rec) == selected
	}
}
