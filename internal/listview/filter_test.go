package listview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type entry struct {
	title   string
	company string
	status  string
}

func searchable(e entry) []string { return []string{e.title, e.company} }

func TestQueryPredicateCaseInsensitiveSubstring(t *testing.T) {
	t.Parallel()

	recs := []entry{
		{title: "Backend Engineer", company: "Acme Corp"},
		{title: "Data Analyst", company: "Globex"},
		{title: "ACME Evangelist", company: "Initech"},
	}

	matched := Filter(recs, QueryPredicate("acme", searchable))
	assert.Len(t, matched, 2)
	assert.Equal(t, "Backend Engineer", matched[0].title)
	assert.Equal(t, "ACME Evangelist", matched[1].title)
}

func TestQueryPredicateEmptyMatchesAll(t *testing.T) {
	t.Parallel()

	recs := []entry{{title: "a"}, {title: "b"}}

	assert.Len(t, Filter(recs, QueryPredicate("", searchable)), 2)
	assert.Len(t, Filter(recs, QueryPredicate("   ", searchable)), 2)
}

func TestEqualsPredicate(t *testing.T) {
	t.Parallel()

	recs := []entry{
		{title: "a", status: "APPLIED"},
		{title: "b", status: "OFFER"},
		{title: "c", status: "APPLIED"},
	}
	byStatus := func(e entry) string { return e.status }

	matched := Filter(recs, EqualsPredicate("APPLIED", byStatus))
	assert.Len(t, matched, 2)

	// empty selection deactivates the filter
	assert.Len(t, Filter(recs, EqualsPredicate("", byStatus)), 3)

	// exact match only, no substring semantics
	assert.Empty(t, Filter(recs, EqualsPredicate("APPL", byStatus)))
}

func TestFilterCombinesWithAndSemantics(t *testing.T) {
	t.Parallel()

	recs := []entry{
		{title: "Backend Engineer", company: "Acme", status: "APPLIED"},
		{title: "Frontend Engineer", company: "Acme", status: "OFFER"},
		{title: "Backend Engineer", company: "Globex", status: "APPLIED"},
	}

	matched := Filter(recs,
		QueryPredicate("acme", searchable),
		EqualsPredicate("APPLIED", func(e entry) string { return e.status }),
	)
	assert.Len(t, matched, 1)
	assert.Equal(t, "Backend Engineer", matched[0].title)
}

// Applying the same filter to its own output changes nothing.
func TestFilterIdempotent(t *testing.T) {
	t.Parallel()

	recs := []entry{
		{title: "Backend Engineer", company: "Acme"},
		{title: "Data Analyst", company: "Globex"},
	}
	pred := QueryPredicate("engineer", searchable)

	once := Filter(recs, pred)
	twice := Filter(once, pred)
	assert.Equal(t, once, twice)
}

func TestFilterPreservesOrder(t *testing.T) {
	t.Parallel()

	recs := []entry{{title: "c"}, {title: "a"}, {title: "b"}}
	matched := Filter(recs, QueryPredicate("", searchable))
	assert.Equal(t, recs, matched)
}
