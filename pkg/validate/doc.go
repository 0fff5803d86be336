// Package validate implements the data-grid validation engine: sessions
// that walk a row/column working set, evaluate each cell's rules, and
// reconcile failures into a live error map.
//
// # Architecture
//
// A Validator binds a grid.DataSource, a rule.Set, an optional named
// validator registry, and an optional grid.Presenter. Each public
// operation starts a session that clears prior error state, walks the
// selected rows (honoring tree/group nesting and skipping removed,
// pending-delete, and aggregate rows), and runs every applicable rule
// per cell. Built-in rules evaluate synchronously; custom validators run
// concurrently per cell and are awaited before the session resolves.
//
// Sessions are serialized by identity: a newer call supersedes an older
// one that is still awaiting custom validators, and the superseded
// session's results never reach the shared error map. In-flight
// validators are not cancelled beyond ctx; a hung validator stalls only
// its own session.
//
// Fail-fast (Validate) stops visiting rows after the first failing one;
// exhaustive (FullValidate) checks every eligible cell. Either way the
// focus target on failure is deterministic: the failing cell with the
// lowest row index, then column index, chosen after all outstanding
// checks settle.
//
// # Usage
//
//	v, err := validate.New(src,
//		validate.WithRules(rules),
//		validate.WithRegistry(registry),
//		validate.WithPresenter(presenter),
//	)
//	if err != nil {
//		return err
//	}
//	if err := v.FullValidate(ctx, validate.AllRows(), nil); err != nil {
//		failures, _ := validate.AsFailureMap(err)
//		// render failures
//	}
//
// # Error Handling
//
// Constraint violations and custom-validator failures surface as
// FailureMap (which implements error) or per-cell *CellError values;
// nothing is ever thrown. Configuration problems, like a named
// validator missing from the registry, are logged as warnings and the
// rule passes.
package validate
