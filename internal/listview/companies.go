package listview

import (
	"strconv"

	"apptrack/internal/models"
)

// CompaniesDefinition declares the companies list. Default ordering follows
// the persisted ordering: name ascending.
func CompaniesDefinition() Definition[*models.Company] {
	return Definition[*models.Company]{
		SortKeys: map[string]Accessor[*models.Company]{
			"name":    func(c *models.Company) Value { return String(c.Name) },
			"website": func(c *models.Company) Value { return StringPtr(c.Website) },
			"industry": func(c *models.Company) Value { return StringPtr(c.Industry) },
			"is_nonprofit": func(c *models.Company) Value { return Bool(c.IsNonprofit) },
			"founding_year": func(c *models.Company) Value { return IntPtr(c.FoundingYear) },
			"size": func(c *models.Company) Value {
				if c.Size == nil {
					return Null()
				}
				return String(string(*c.Size))
			},
			"created_at": func(c *models.Company) Value { return Time(c.CreatedAt) },
			"updated_at": func(c *models.Company) Value { return Time(c.UpdatedAt) },
		},
		DefaultSortKey:   "name",
		DefaultDirection: Ascending,

		SearchFields: func(c *models.Company) []string {
			return []string{c.Name, derefString(c.Website)}
		},
		Categorical: map[string]func(*models.Company) string{
			"size": func(c *models.Company) string {
				if c.Size == nil {
					return ""
				}
				return string(*c.Size)
			},
		},

		Columns: []Column{
			{ID: "name", Title: "Name"},
			{ID: "website", Title: "Website"},
			{ID: "industry", Title: "Industry"},
			{ID: "size", Title: "Size"},
			{ID: "is_nonprofit", Title: "Nonprofit"},
			{ID: "founding_year", Title: "Founded"},
			{ID: "created_at", Title: "Created"},
			{ID: "updated_at", Title: "Updated"},
		},
		DefaultColumns: []string{"name", "website", "created_at", "updated_at"},

		Cell: func(c *models.Company, columnID string) string {
			switch columnID {
			case "name":
				return c.Name
			case "website":
				return derefString(c.Website)
			case "industry":
				return derefString(c.Industry)
			case "size":
				if c.Size == nil {
					return ""
				}
				return string(*c.Size)
			case "is_nonprofit":
				if c.IsNonprofit {
					return "Yes"
				}
				return "No"
			case "founding_year":
				if c.FoundingYear == nil {
					return ""
				}
				return strconv.Itoa(*c.FoundingYear)
			case "created_at":
				return c.CreatedAt.Format(dateLayout)
			case "updated_at":
				return c.UpdatedAt.Format(dateLayout)
			}
			return ""
		},
		RowID: func(c *models.Company) string { return c.ID },
	}
}

// NewCompaniesView creates a companies list view in its default state:
// name ascending, default columns, no active filters.
func NewCompaniesView() *View[*models.Company] {
	return NewView(CompaniesDefinition())
}
