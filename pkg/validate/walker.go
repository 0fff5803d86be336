package validate

import "github.com/gridkit/gridkit/pkg/grid"

// walk visits every row in the working set depth-first, descending into
// tree and group children through the source's configured children
// fields. Removed and pending-delete rows are skipped together with
// their subtrees; aggregate rows are not visited themselves but their
// children are real data and are.
func (v *Validator) walk(rows []grid.Row, visit func(grid.Row)) {
	for _, row := range rows {
		v.walkRow(row, visit)
	}
}

func (v *Validator) walkRow(row grid.Row, visit func(grid.Row)) {
	if row == nil {
		return
	}
	if v.src.IsRemoved(row) || v.src.IsPendingDelete(row) {
		return
	}

	if !v.src.IsAggregate(row) {
		visit(row)
	}

	if field := v.src.TreeChildrenField(); field != "" {
		v.walk(childRows(row[field]), visit)
	}
	if field := v.src.GroupChildrenField(); field != "" {
		v.walk(childRows(row[field]), visit)
	}
}

// childRows coerces a children-field value into rows. Hosts may store
// children as []grid.Row, []map[string]any, or []any of either.
func childRows(value any) []grid.Row {
	switch children := value.(type) {
	case nil:
		return nil
	case []grid.Row:
		return children
	case []map[string]any:
		rows := make([]grid.Row, len(children))
		for i, child := range children {
			rows[i] = grid.Row(child)
		}
		return rows
	case []any:
		rows := make([]grid.Row, 0, len(children))
		for _, child := range children {
			switch c := child.(type) {
			case grid.Row:
				rows = append(rows, c)
			case map[string]any:
				rows = append(rows, grid.Row(c))
			}
		}
		return rows
	}
	return nil
}
