package listview

import (
	"testing"

	"apptrack/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func job(id, title, company string, priority int, status models.JobStatus) *models.Job {
	j := &models.Job{
		PositionTitle: title,
		Status:        status,
		Priority:      priority,
		Company:       &models.Company{Name: company},
	}
	j.ID = id
	return j
}

func jobFixtures() []*models.Job {
	return []*models.Job{
		job("1", "Backend Engineer", "Acme Corp", 2, models.JobStatusApplied),
		job("2", "Data Analyst", "Globex", 5, models.JobStatusBookmarked),
		job("3", "Platform Engineer", "Initech", 4, models.JobStatusInterviewing),
		job("4", "SRE", "Acme Corp", 4, models.JobStatusBookmarked),
	}
}

func rowIDs(rows []Row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.ID
	}
	return out
}

// A fresh jobs view orders by priority descending with ties in insertion
// order.
func TestJobsViewDefaultSort(t *testing.T) {
	t.Parallel()

	view := NewJobsView()
	rows, headers := view.Rows(jobFixtures())

	assert.Equal(t, []string{"2", "3", "4", "1"}, rowIDs(rows))

	for _, h := range headers {
		if h.Column.ID == "priority" {
			assert.True(t, h.Sorted)
			assert.Equal(t, Descending, h.Direction)
		} else {
			assert.False(t, h.Sorted)
		}
	}
}

func TestJobsViewToggleSort(t *testing.T) {
	t.Parallel()

	view := NewJobsView()

	// a new key starts ascending
	view.ToggleSort("position")
	assert.Equal(t, "position", view.SortKey())
	assert.Equal(t, Ascending, view.Direction())

	rows, _ := view.Rows(jobFixtures())
	assert.Equal(t, []string{"1", "2", "3", "4"}, rowIDs(rows))

	// toggling the active key flips direction
	view.ToggleSort("position")
	assert.Equal(t, Descending, view.Direction())
	rows, _ = view.Rows(jobFixtures())
	assert.Equal(t, []string{"4", "3", "2", "1"}, rowIDs(rows))

	// unknown keys change nothing
	view.ToggleSort("bogus")
	assert.Equal(t, "position", view.SortKey())
	assert.Equal(t, Descending, view.Direction())
}

func TestJobsViewSortByDerivedCompany(t *testing.T) {
	t.Parallel()

	view := NewJobsView()
	view.SetSort("company", Ascending)

	rows, _ := view.Rows(jobFixtures())
	// Acme Corp (1, 4 keep insertion order), Globex, Initech
	assert.Equal(t, []string{"1", "4", "2", "3"}, rowIDs(rows))
}

func TestJobsViewQueryMatchesPositionAndCompany(t *testing.T) {
	t.Parallel()

	view := NewJobsView()
	view.SetQuery("acme")

	rows, _ := view.Rows(jobFixtures())
	// both Acme jobs survive, still priority descending
	assert.Equal(t, []string{"4", "1"}, rowIDs(rows))
}

func TestJobsViewStatusFilterCombinesWithQuery(t *testing.T) {
	t.Parallel()

	view := NewJobsView()
	view.SetQuery("acme")
	view.SetFilter("status", string(models.JobStatusBookmarked))

	rows, _ := view.Rows(jobFixtures())
	assert.Equal(t, []string{"4"}, rowIDs(rows))
}

func TestJobsViewResetFiltersKeepsSort(t *testing.T) {
	t.Parallel()

	view := NewJobsView()
	view.SetSort("position", Descending)
	view.SetQuery("acme")
	view.SetFilter("status", string(models.JobStatusApplied))

	view.ResetFilters()

	rows, _ := view.Rows(jobFixtures())
	assert.Len(t, rows, 4)
	assert.Equal(t, "position", view.SortKey())
	assert.Equal(t, Descending, view.Direction())
}

func TestJobsViewSetSortUnknownKeyFallsBack(t *testing.T) {
	t.Parallel()

	view := NewJobsView()
	view.SetSort("nonsense", Descending)

	assert.Equal(t, "priority", view.SortKey())
	assert.Equal(t, Descending, view.Direction())
}

func TestJobsViewPositionColumnMandatory(t *testing.T) {
	t.Parallel()

	view := NewJobsView()
	view.ToggleColumn("position")

	_, headers := view.Rows(jobFixtures())
	require.NotEmpty(t, headers)
	assert.Equal(t, "position", headers[0].Column.ID)
}

func TestJobsViewRowProjection(t *testing.T) {
	t.Parallel()

	view := NewJobsView()
	rows, headers := view.Rows(jobFixtures()[:1])

	require.Len(t, rows, 1)
	require.Equal(t, len(headers), len(rows[0].Cells))

	byColumn := make(map[string]string)
	for i, h := range headers {
		byColumn[h.Column.ID] = rows[0].Cells[i]
	}
	assert.Equal(t, "Backend Engineer", byColumn["position"])
	assert.Equal(t, "Acme Corp", byColumn["company"])
	assert.Equal(t, "APPLIED", byColumn["status"])
	assert.Equal(t, "2", byColumn["priority"])
}

func company(id, name string, foundingYear *int) *models.Company {
	c := &models.Company{Name: name, FoundingYear: foundingYear}
	c.ID = id
	return c
}

func intp(n int) *int { return &n }

func TestCompaniesViewDefaultSortByName(t *testing.T) {
	t.Parallel()

	view := NewCompaniesView()
	rows, _ := view.Rows([]*models.Company{
		company("1", "Globex", nil),
		company("2", "Acme", nil),
		company("3", "Initech", nil),
	})
	assert.Equal(t, []string{"2", "1", "3"}, rowIDs(rows))
}

// Sorting companies by founding year puts companies without a year after
// every dated one, ascending or descending.
func TestCompaniesViewFoundingYearNullsLast(t *testing.T) {
	t.Parallel()

	companies := []*models.Company{
		company("1", "NoYear", nil),
		company("2", "Old", intp(1998)),
		company("3", "New", intp(2020)),
	}

	view := NewCompaniesView()
	view.SetSort("founding_year", Ascending)
	rows, _ := view.Rows(companies)
	assert.Equal(t, []string{"2", "3", "1"}, rowIDs(rows))

	view.SetSort("founding_year", Descending)
	rows, _ = view.Rows(companies)
	assert.Equal(t, []string{"3", "2", "1"}, rowIDs(rows))
}

func TestCompaniesViewSizeFilter(t *testing.T) {
	t.Parallel()

	small := models.CompanySize("1-10")
	big := models.CompanySize("2001-5000")
	a := company("1", "Acme", nil)
	a.Size = &small
	b := company("2", "Globex", nil)
	b.Size = &big
	c := company("3", "Initech", nil)

	view := NewCompaniesView()
	view.SetFilter("size", string(small))

	rows, _ := view.Rows([]*models.Company{a, b, c})
	assert.Equal(t, []string{"1"}, rowIDs(rows))
}

func TestViewResetRestoresDefaults(t *testing.T) {
	t.Parallel()

	view := NewJobsView()
	view.SetSort("position", Descending)
	view.SetQuery("acme")
	view.ToggleColumn("salary_min")

	view.Reset()

	assert.Equal(t, "priority", view.SortKey())
	assert.Equal(t, Descending, view.Direction())
	assert.Equal(t, "", view.Query())
	assert.False(t, view.Columns().Visible("salary_min"))
}
