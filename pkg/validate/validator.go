package validate

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/gridkit/gridkit/pkg/grid"
	"github.com/gridkit/gridkit/pkg/rule"
)

// Callback receives a session's failure map, nil on success. Supplying
// a callback makes the operation itself always return nil; failures are
// delivered only through the callback argument.
type Callback func(FailureMap)

// Validator is the validation engine for one grid instance. It owns the
// error map and serializes sessions: a new validate call clears prior
// error state and supersedes any session still resolving.
type Validator struct {
	src       grid.DataSource
	presenter grid.Presenter
	registry  *rule.Registry
	rules     rule.Set
	opts      Options
	logger    *slog.Logger
	listener  FailureListener
	errs      *ErrorMap

	// mu serializes session bookkeeping and merges so two sessions can
	// never interleave writes to the error map.
	mu     sync.Mutex
	seq    atomic.Uint64
	active atomic.Uint64
}

// New creates a Validator over the given data source.
func New(src grid.DataSource, opts ...Option) (*Validator, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	v := &Validator{
		src:      src,
		registry: rule.NewRegistry(),
		opts:     DefaultOptions(),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(v)
	}
	v.errs = NewErrorMap(v.opts.MsgMode == MsgModeSingle)
	return v, nil
}

// Validate runs a fail-fast session over the selected rows: once any
// cell fails, rows visited afterwards are skipped, though checks already
// dispatched still complete and record. A nil selector validates the
// insert/update working set. Without a callback the returned error is
// the FailureMap; with one, the error is always nil.
func (v *Validator) Validate(ctx context.Context, sel RowSelector, cb Callback) error {
	return v.run(ctx, sel, nil, false, cb)
}

// FullValidate runs an exhaustive session: every eligible cell is
// checked regardless of earlier failures.
//
// Deprecated callback form: passing a callback instead of using the
// returned failure map is deprecated and logged, but still honored.
func (v *Validator) FullValidate(ctx context.Context, sel RowSelector, cb Callback) error {
	if cb != nil {
		v.logger.Warn("callback argument to FullValidate is deprecated; use the returned failure map")
	}
	return v.run(ctx, sel, nil, true, cb)
}

// ValidateField runs a fail-fast session restricted to the given fields.
func (v *Validator) ValidateField(ctx context.Context, sel RowSelector, fields []string, cb Callback) error {
	return v.run(ctx, sel, fields, false, cb)
}

// FullValidateField runs an exhaustive session restricted to the given
// fields. The callback form carries the same deprecation as
// FullValidate.
func (v *Validator) FullValidateField(ctx context.Context, sel RowSelector, fields []string, cb Callback) error {
	if cb != nil {
		v.logger.Warn("callback argument to FullValidateField is deprecated; use the returned failure map")
	}
	return v.run(ctx, sel, fields, true, cb)
}

// ValidateCell checks one cell for the given trigger, updating the error
// map: a failure is recorded, a pass clears the cell's entry. The
// returned error, when non-nil, is a *CellError.
func (v *Validator) ValidateCell(ctx context.Context, trigger rule.Trigger, row grid.Row, col grid.Column) error {
	return v.validateCellRecorded(ctx, trigger, row, col, nil)
}

// ValidateCellValue is ValidateCell with the candidate value overriding
// the row's current one, for editors validating uncommitted input.
func (v *Validator) ValidateCellValue(ctx context.Context, trigger rule.Trigger, row grid.Row, col grid.Column, value any) error {
	return v.validateCellRecorded(ctx, trigger, row, col, &value)
}

func (v *Validator) validateCellRecorded(ctx context.Context, trigger rule.Trigger, row grid.Row, col grid.Column, override *any) error {
	cell := v.checkCell(ctx, trigger, row, col, override)
	rowID := v.src.RowID(row)
	if cell == nil {
		v.errs.Clear([]string{rowID}, []string{col.ID})
		return nil
	}
	v.errs.Record(rowID, row, col, cell.Rule.Rule, cell.Rule.Message)
	return cell
}

// ClearValidate removes validation errors. With no arguments everything
// is cleared; rows alone clear those rows' entries, fields alone clear
// the matching columns' entries, both together the intersection. A
// selection that resolves to nothing (nil-only rows, unknown fields)
// clears nothing; only the explicit no-argument form wipes the map. Any
// open validation tooltip is closed.
func (v *Validator) ClearValidate(rows []grid.Row, fields ...string) {
	var rowIDs []string
	for _, row := range rows {
		if row != nil {
			rowIDs = append(rowIDs, v.src.RowID(row))
		}
	}
	if len(rows) > 0 && len(rowIDs) == 0 {
		return
	}

	var colIDs []string
	if len(fields) > 0 {
		wanted := make(map[string]bool, len(fields))
		for _, f := range fields {
			wanted[f] = true
		}
		for _, col := range v.src.Columns() {
			if wanted[col.Field] {
				colIDs = append(colIDs, col.ID)
			}
		}
		if len(colIDs) == 0 {
			return
		}
	}

	v.errs.Clear(rowIDs, colIDs)
	if v.presenter != nil {
		v.presenter.HideTooltip()
	}
}

// Errors returns a snapshot of the current error map keyed by
// "<rowID>:<columnID>".
func (v *Validator) Errors() map[string]Entry {
	return v.errs.Entries()
}

// HasError reports whether the cell currently has a recorded validation
// error.
func (v *Validator) HasError(row grid.Row, col grid.Column) bool {
	_, ok := v.errs.Get(v.src.RowID(row), col.ID)
	return ok
}
