package listview

import (
	"sort"
)

type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// Accessor resolves a record's value for one sort key.
type Accessor[T any] func(T) Value

// Sort returns a new ordered slice; the input is never mutated. Records
// whose resolved value is null order after every defined value under both
// directions, and equal keys keep their relative input order.
func Sort[T any](records []T, acc Accessor[T], dir Direction) []T {
	out := make([]T, len(records))
	copy(out, records)

	sort.SliceStable(out, func(i, j int) bool {
		av, bv := acc(out[i]), acc(out[j])
		if av.IsNull() || bv.IsNull() {
			// nulls last regardless of direction; two nulls stay put
			return !av.IsNull() && bv.IsNull()
		}
		c := compare(av, bv)
		if dir == Descending {
			return c > 0
		}
		return c < 0
	})

	return out
}
