package grid

import "context"

// Row is one data record in the grid. Values are dynamically typed; field
// names match Column.Field.
type Row map[string]any

// Column identifies a grid column: a data field plus a unique column id.
// The id disambiguates columns that render the same field twice.
type Column struct {
	ID    string
	Field string
	Title string
}

// DataSource provides read access to the host grid's dataset and row
// classification. Implementations must be safe for concurrent reads.
type DataSource interface {
	// Columns returns all columns in display order.
	Columns() []Column

	// FullData returns every top-level row currently in the grid.
	// Tree or group children are reachable through the children fields,
	// not repeated here.
	FullData() []Row

	// InsertRecords returns rows added since the last commit.
	InsertRecords() []Row

	// UpdateRecords returns rows modified since the last commit.
	UpdateRecords() []Row

	// RowID resolves a row's stable identity. The identity must not
	// change for the lifetime of a validation session.
	RowID(row Row) string

	// RowIndex returns the position of the row in the full dataset, or
	// -1 when the row is not present.
	RowIndex(row Row) int

	// ColumnIndex returns the position of the column, or -1 when the
	// column is not present.
	ColumnIndex(col Column) int

	// IsAggregate reports whether the row is a computed summary row
	// rather than real data.
	IsAggregate(row Row) bool

	// IsRemoved reports whether the row has been removed from the
	// working dataset but not yet committed.
	IsRemoved(row Row) bool

	// IsPendingDelete reports whether the row is marked for deletion.
	IsPendingDelete(row Row) bool

	// TreeChildrenField returns the field holding child rows in plain
	// tree mode, or "" when the grid is flat.
	TreeChildrenField() string

	// GroupChildrenField returns the field holding child rows in
	// grouped/aggregate mode, or "" when grouping is off.
	GroupChildrenField() string
}

// Presenter drives user-visible feedback on validation failures.
// Implementations are called from the goroutine that resolves a
// validation session; they should not block for long.
type Presenter interface {
	// ScrollToRow brings the row into the viewport.
	ScrollToRow(ctx context.Context, row Row) error

	// EditCell activates edit mode on the cell.
	EditCell(ctx context.Context, row Row, col Column) error

	// ShowTooltip opens a floating message anchored to the cell.
	// maxWidth caps the tooltip width in pixels; 0 means unconstrained.
	ShowTooltip(row Row, col Column, message string, maxWidth int)

	// HideTooltip closes any open validation tooltip.
	HideTooltip()

	// FixedHeight reports whether the grid has a fixed pixel height
	// rather than sizing to its row count. Tooltip placement depends
	// on it.
	FixedHeight() bool
}
