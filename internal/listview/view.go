package listview

// Definition declares everything a list type exposes to the view engine:
// the sort-key dispatch table, searchable fields, categorical filter fields,
// the column superset and defaults, and the row projection.
type Definition[T any] struct {
	SortKeys         map[string]Accessor[T]
	DefaultSortKey   string
	DefaultDirection Direction

	SearchFields func(T) []string
	Categorical  map[string]func(T) string

	Columns          []Column
	DefaultColumns   []string
	MandatoryColumns []string

	// Cell projects one record attribute into its display representation.
	Cell func(T, string) string
	// RowID yields the record id used for detail navigation.
	RowID func(T) string
}

// Header describes one rendered column header, including whether it carries
// the active sort indicator.
type Header struct {
	Column    Column    `json:"column"`
	Sorted    bool      `json:"sorted"`
	Direction Direction `json:"direction,omitempty"`
}

// Row is one projected record: the cells of the visible columns in header
// order plus the record id for detail navigation.
type Row struct {
	ID    string   `json:"id"`
	Cells []string `json:"cells"`
}

// View owns the interaction state of one list page: active sort key and
// direction, free-text query, categorical selections, and visible columns.
// Every state change takes effect atomically from the next Rows call.
type View[T any] struct {
	def Definition[T]

	sortKey   string
	direction Direction
	query     string
	filters   map[string]string
	columns   *ColumnSet
}

// NewView initializes a view in its default state.
func NewView[T any](def Definition[T]) *View[T] {
	return &View[T]{
		def:       def,
		sortKey:   def.DefaultSortKey,
		direction: def.DefaultDirection,
		filters:   make(map[string]string),
		columns:   NewColumnSet(def.Columns, def.DefaultColumns, def.MandatoryColumns...),
	}
}

// ToggleSort requests a sort on the given key: the active key flips
// direction, a new key resets to ascending. Unknown keys are ignored.
func (v *View[T]) ToggleSort(key string) {
	if _, ok := v.def.SortKeys[key]; !ok {
		return
	}
	if key == v.sortKey {
		if v.direction == Ascending {
			v.direction = Descending
		} else {
			v.direction = Ascending
		}
		return
	}
	v.sortKey = key
	v.direction = Ascending
}

// SetSort sets an explicit sort key and direction, falling back to the
// defaults for unknown keys.
func (v *View[T]) SetSort(key string, dir Direction) {
	if _, ok := v.def.SortKeys[key]; !ok {
		v.sortKey = v.def.DefaultSortKey
		v.direction = v.def.DefaultDirection
		return
	}
	v.sortKey = key
	if dir != Descending {
		dir = Ascending
	}
	v.direction = dir
}

func (v *View[T]) SortKey() string       { return v.sortKey }
func (v *View[T]) Direction() Direction  { return v.direction }
func (v *View[T]) Query() string         { return v.query }

func (v *View[T]) SetQuery(q string) { v.query = q }

// SetFilter activates a categorical filter; an empty value clears it.
// Unknown filter names are ignored.
func (v *View[T]) SetFilter(name, value string) {
	if _, ok := v.def.Categorical[name]; !ok {
		return
	}
	if value == "" {
		delete(v.filters, name)
		return
	}
	v.filters[name] = value
}

func (v *View[T]) Filter(name string) string { return v.filters[name] }

// ToggleColumn flips one column's visibility.
func (v *View[T]) ToggleColumn(id string) { v.columns.Toggle(id) }

// Columns exposes the visibility controller.
func (v *View[T]) Columns() *ColumnSet { return v.columns }

// ResetFilters clears the query and every categorical selection, restoring
// the full list modulo sort.
func (v *View[T]) ResetFilters() {
	v.query = ""
	v.filters = make(map[string]string)
}

// Reset restores the complete default state: sort, filters and columns.
func (v *View[T]) Reset() {
	v.sortKey = v.def.DefaultSortKey
	v.direction = v.def.DefaultDirection
	v.ResetFilters()
	v.columns.Reset()
}

// Select recomputes filter then sort over the raw records.
func (v *View[T]) Select(records []T) []T {
	preds := []Predicate[T]{QueryPredicate(v.query, v.def.SearchFields)}
	for name, selected := range v.filters {
		preds = append(preds, EqualsPredicate(selected, v.def.Categorical[name]))
	}
	filtered := Filter(records, preds...)
	return Sort(filtered, v.def.SortKeys[v.sortKey], v.direction)
}

// Rows runs the full pipeline - filter, sort, project - and returns the
// rendered rows together with the matching headers.
func (v *View[T]) Rows(records []T) ([]Row, []Header) {
	selected := v.Select(records)
	visible := v.columns.VisibleColumns()

	headers := make([]Header, len(visible))
	for i, col := range visible {
		h := Header{Column: col}
		if col.ID == v.sortKey {
			h.Sorted = true
			h.Direction = v.direction
		}
		headers[i] = h
	}

	rows := make([]Row, len(selected))
	for i, rec := range selected {
		cells := make([]string, len(visible))
		for j, col := range visible {
			cells[j] = v.def.Cell(rec, col.ID)
		}
		rows[i] = Row{ID: v.def.RowID(rec), Cells: cells}
	}
	return rows, headers
}
