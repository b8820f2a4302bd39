package grid

// Column maps a row field to a human-readable header.
type Column struct {
	Key   string
	Label string
}

// Resolved is the render-ready column layout.
type Resolved struct {
	Keys   []string
	Labels []string
	// SelectionLabel is the header of the column holding the criteria field.
	SelectionLabel string
	HasSelection   bool
}

// Resolve derives the column layout. Configured columns are used as given;
// without configuration the first row's field names serve as both keys and
// labels and no selection column is flagged. rows must not be empty when
// columns is.
func Resolve(rows []Row, columns []Column, criteria *Criteria) Resolved {
	if len(columns) == 0 {
		keys := rows[0].Keys()
		labels := append([]string(nil), keys...)
		return Resolved{Keys: keys, Labels: labels}
	}

	r := Resolved{
		Keys:   make([]string, 0, len(columns)),
		Labels: make([]string, 0, len(columns)),
	}
	for _, col := range columns {
		r.Keys = append(r.Keys, col.Key)
		r.Labels = append(r.Labels, col.Label)
		if criteria != nil && col.Key == criteria.Key {
			r.SelectionLabel = col.Label
			r.HasSelection = true
		}
	}
	return r
}

// IsSelectionLabel reports whether label heads the selection column.
func (r Resolved) IsSelectionLabel(label string) bool {
	return r.HasSelection && label == r.SelectionLabel
}
