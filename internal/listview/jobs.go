package listview

import (
	"strconv"
	"time"

	"apptrack/internal/models"
)

const dateLayout = "2006-01-02"

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func formatNumber(n *float64) string {
	if n == nil {
		return ""
	}
	return strconv.FormatFloat(*n, 'f', -1, 64)
}

// JobsDefinition declares the jobs list: sort-key dispatch table (including
// the derived company key), searchable fields, the status categorical
// filter, and the column superset. The position column is mandatory and
// renders unconditionally.
func JobsDefinition() Definition[*models.Job] {
	return Definition[*models.Job]{
		SortKeys: map[string]Accessor[*models.Job]{
			"position": func(j *models.Job) Value { return String(j.PositionTitle) },
			"company":  func(j *models.Job) Value { return String(j.CompanyName()) },
			"status":   func(j *models.Job) Value { return String(string(j.Status)) },
			"priority": func(j *models.Job) Value { return Number(float64(j.Priority)) },
			"location": func(j *models.Job) Value { return StringPtr(j.Location) },
			"is_remote": func(j *models.Job) Value { return Bool(j.IsRemote) },
			"salary_min": func(j *models.Job) Value { return NumberPtr(j.SalaryMin) },
			"salary_max": func(j *models.Job) Value { return NumberPtr(j.SalaryMax) },
			"date_applied": func(j *models.Job) Value { return TimePtr(j.DateApplied) },
			"date_posted":  func(j *models.Job) Value { return TimePtr(j.DatePosted) },
			"date_deadline": func(j *models.Job) Value { return TimePtr(j.DateDeadline) },
			"created_at": func(j *models.Job) Value { return Time(j.CreatedAt) },
			"updated_at": func(j *models.Job) Value { return Time(j.UpdatedAt) },
		},
		DefaultSortKey:   "priority",
		DefaultDirection: Descending,

		SearchFields: func(j *models.Job) []string {
			return []string{j.PositionTitle, j.CompanyName()}
		},
		Categorical: map[string]func(*models.Job) string{
			"status": func(j *models.Job) string { return string(j.Status) },
		},

		Columns: []Column{
			{ID: "position", Title: "Position"},
			{ID: "company", Title: "Company"},
			{ID: "status", Title: "Status"},
			{ID: "priority", Title: "Priority"},
			{ID: "location", Title: "Location"},
			{ID: "is_remote", Title: "Remote"},
			{ID: "salary_min", Title: "Salary Min"},
			{ID: "salary_max", Title: "Salary Max"},
			{ID: "date_applied", Title: "Applied"},
			{ID: "date_posted", Title: "Posted"},
			{ID: "date_deadline", Title: "Deadline"},
			{ID: "created_at", Title: "Created"},
			{ID: "updated_at", Title: "Updated"},
		},
		DefaultColumns:   []string{"position", "company", "status", "priority", "location"},
		MandatoryColumns: []string{"position"},

		Cell: func(j *models.Job, columnID string) string {
			switch columnID {
			case "position":
				return j.PositionTitle
			case "company":
				return j.CompanyName()
			case "status":
				return string(j.Status)
			case "priority":
				return strconv.Itoa(j.Priority)
			case "location":
				return derefString(j.Location)
			case "is_remote":
				if j.IsRemote {
					return "Yes"
				}
				return "No"
			case "salary_min":
				return formatNumber(j.SalaryMin)
			case "salary_max":
				return formatNumber(j.SalaryMax)
			case "date_applied":
				return formatDate(j.DateApplied)
			case "date_posted":
				return formatDate(j.DatePosted)
			case "date_deadline":
				return formatDate(j.DateDeadline)
			case "created_at":
				return j.CreatedAt.Format(dateLayout)
			case "updated_at":
				return j.UpdatedAt.Format(dateLayout)
			}
			return ""
		},
		RowID: func(j *models.Job) string { return j.ID },
	}
}

// NewJobsView creates a jobs list view in its default state:
// priority descending, default columns, no active filters.
func NewJobsView() *View[*models.Job] {
	return NewView(JobsDefinition())
}
