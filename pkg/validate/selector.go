package validate

import "github.com/gridkit/gridkit/pkg/grid"

// RowSelector picks the working set of rows for a validation call.
// A nil selector is equivalent to ChangedRows.
type RowSelector interface {
	resolve(src grid.DataSource) []grid.Row
}

type allRows struct{}

func (allRows) resolve(src grid.DataSource) []grid.Row {
	return src.FullData()
}

// AllRows selects the full current dataset.
func AllRows() RowSelector { return allRows{} }

type rowList []grid.Row

func (l rowList) resolve(grid.DataSource) []grid.Row {
	rows := make([]grid.Row, 0, len(l))
	for _, row := range l {
		if row != nil {
			rows = append(rows, row)
		}
	}
	return rows
}

// Rows selects exactly the given rows.
func Rows(rows ...grid.Row) RowSelector { return rowList(rows) }

type changedRows struct{}

func (changedRows) resolve(src grid.DataSource) []grid.Row {
	inserted := src.InsertRecords()
	updated := src.UpdateRecords()
	rows := make([]grid.Row, 0, len(inserted)+len(updated))
	rows = append(rows, inserted...)
	rows = append(rows, updated...)
	return rows
}

// ChangedRows selects the insert/update working set. This is the default
// when no selector is given.
func ChangedRows() RowSelector { return changedRows{} }

func resolveRows(sel RowSelector, src grid.DataSource) []grid.Row {
	if sel == nil {
		sel = ChangedRows()
	}
	return sel.resolve(src)
}
