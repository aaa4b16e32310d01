package listview

// Column is one declared column of a list type.
type Column struct {
	ID    string
	Title string
}

// ColumnSet tracks which columns of a fixed declared superset are currently
// rendered. Visibility is independent of filtering and sorting: it only
// affects which attributes are projected into rows and headers.
type ColumnSet struct {
	superset  []Column
	defaults  []string
	mandatory map[string]bool
	visible   map[string]bool
}

// NewColumnSet declares the superset and the default visible subset.
// Mandatory columns render unconditionally and cannot be toggled off.
func NewColumnSet(superset []Column, defaults []string, mandatory ...string) *ColumnSet {
	cs := &ColumnSet{
		superset:  superset,
		defaults:  defaults,
		mandatory: make(map[string]bool, len(mandatory)),
		visible:   make(map[string]bool),
	}
	for _, id := range mandatory {
		cs.mandatory[id] = true
	}
	cs.Reset()
	return cs
}

// Toggle adds the column if hidden, removes it if shown. Toggling an
// unknown or mandatory column is a no-op.
func (cs *ColumnSet) Toggle(id string) {
	if cs.mandatory[id] || !cs.declared(id) {
		return
	}
	if cs.visible[id] {
		delete(cs.visible, id)
	} else {
		cs.visible[id] = true
	}
}

// Visible reports whether the column currently renders.
func (cs *ColumnSet) Visible(id string) bool {
	return cs.mandatory[id] || cs.visible[id]
}

// VisibleColumns returns the rendered columns in superset order.
func (cs *ColumnSet) VisibleColumns() []Column {
	out := make([]Column, 0, len(cs.superset))
	for _, col := range cs.superset {
		if cs.Visible(col.ID) {
			out = append(out, col)
		}
	}
	return out
}

// Declared returns the full column superset in declaration order.
func (cs *ColumnSet) Declared() []Column {
	out := make([]Column, len(cs.superset))
	copy(out, cs.superset)
	return out
}

// VisibleIDs returns the rendered column ids in superset order.
func (cs *ColumnSet) VisibleIDs() []string {
	cols := cs.VisibleColumns()
	out := make([]string, len(cols))
	for i, col := range cols {
		out[i] = col.ID
	}
	return out
}

// Reset restores the default visible subset.
func (cs *ColumnSet) Reset() {
	cs.visible = make(map[string]bool, len(cs.defaults))
	for _, id := range cs.defaults {
		cs.visible[id] = true
	}
}

func (cs *ColumnSet) declared(id string) bool {
	for _, col := range cs.superset {
		if col.ID == id {
			return true
		}
	}
	return false
}
