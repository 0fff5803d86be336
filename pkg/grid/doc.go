// Package grid defines the collaborator contract between the validation
// engine and the host data-grid component.
//
// The engine never owns grid data. It consumes rows, columns, and row
// classification through the DataSource interface and drives user-visible
// feedback (scrolling, cell editing, tooltips) through the Presenter
// interface. Hosts embed their own grid state behind these interfaces;
// the package also ships MemorySource, a thread-safe in-memory DataSource
// used by tests and by hosts that keep their dataset in process.
//
// # Row identity
//
// Every row must resolve to a stable identity for the lifetime of a
// validation session. MemorySource derives it from the configured key
// field when present and otherwise synthesizes a random id that is cached
// on the row itself, so repeated lookups stay stable.
//
// # Usage
//
//	src := grid.NewMemorySource(
//		[]grid.Column{{ID: "col_age", Field: "age", Title: "Age"}},
//		grid.WithKeyField("id"),
//	)
//	src.Append(grid.Row{"id": 1, "age": 15})
//
// The zero Presenter is not usable; hosts that render nothing can pass a
// nil Presenter to the engine, which treats every presentation action as
// a no-op.
package grid
