package listview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testColumns() *ColumnSet {
	superset := []Column{
		{ID: "position", Title: "Position"},
		{ID: "company", Title: "Company"},
		{ID: "status", Title: "Status"},
		{ID: "salary", Title: "Salary"},
	}
	return NewColumnSet(superset, []string{"position", "company"}, "position")
}

func TestColumnSetDefaults(t *testing.T) {
	t.Parallel()

	cs := testColumns()
	assert.Equal(t, []string{"position", "company"}, cs.VisibleIDs())
}

func TestColumnSetToggleTwiceRestores(t *testing.T) {
	t.Parallel()

	cs := testColumns()
	before := cs.VisibleIDs()

	cs.Toggle("status")
	assert.True(t, cs.Visible("status"))

	cs.Toggle("status")
	assert.Equal(t, before, cs.VisibleIDs())
}

func TestColumnSetMandatoryCannotHide(t *testing.T) {
	t.Parallel()

	cs := testColumns()
	cs.Toggle("position")
	assert.True(t, cs.Visible("position"))
	assert.Contains(t, cs.VisibleIDs(), "position")
}

func TestColumnSetUnknownColumnIgnored(t *testing.T) {
	t.Parallel()

	cs := testColumns()
	before := cs.VisibleIDs()
	cs.Toggle("bogus")
	assert.Equal(t, before, cs.VisibleIDs())
}

// Visible columns always render in superset declaration order, whatever the
// toggle order was.
func TestColumnSetSupersetOrder(t *testing.T) {
	t.Parallel()

	cs := testColumns()
	cs.Toggle("salary")
	cs.Toggle("status")
	assert.Equal(t, []string{"position", "company", "status", "salary"}, cs.VisibleIDs())
}

func TestColumnSetReset(t *testing.T) {
	t.Parallel()

	cs := testColumns()
	cs.Toggle("status")
	cs.Toggle("company")
	cs.Reset()
	assert.Equal(t, []string{"position", "company"}, cs.VisibleIDs())
}
