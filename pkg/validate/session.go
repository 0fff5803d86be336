package validate

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gridkit/gridkit/pkg/grid"
	"github.com/gridkit/gridkit/pkg/rule"
)

// session is the privileged state of one validate/fullValidate call.
// Cell checks record into it; the error map is only touched at the end,
// and only when the session is still the active one.
type session struct {
	id         uint64
	startedAt  time.Time
	exhaustive bool
	stopped    atomic.Bool
	mu         sync.Mutex
	failures   FailureMap
}

func (s *session) record(cell *CellError) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[cell.Column.Field] = append(s.failures[cell.Column.Field], *cell)
	// stopped only drives fail-fast row skipping; exhaustive sessions
	// never consult it.
	if !s.exhaustive {
		s.stopped.Store(true)
	}
}

// run executes one validation session over the selected rows and fields.
// A nil fields slice means every column with declared rules.
func (v *Validator) run(ctx context.Context, sel RowSelector, fields []string, exhaustive bool, cb Callback) error {
	if len(v.rules) == 0 {
		v.errs.Clear(nil, nil)
		if cb != nil {
			cb(nil)
		}
		return nil
	}

	v.mu.Lock()
	s := &session{
		id:         v.seq.Add(1),
		startedAt:  time.Now(),
		exhaustive: exhaustive,
		failures:   make(FailureMap),
	}
	v.active.Store(s.id)

	// A new session invalidates prior error state before any walking.
	v.errs.Clear(nil, nil)
	v.mu.Unlock()

	cols := v.targetColumns(fields)
	rows := resolveRows(sel, v.src)

	v.walk(rows, func(row grid.Row) {
		// Fail-fast consults the shared flag once per row; cells of the
		// row that tripped it still finish and record.
		if !exhaustive && s.stopped.Load() {
			return
		}
		for _, col := range cols {
			if cell := v.checkCell(ctx, rule.TriggerAll, row, col, nil); cell != nil {
				s.record(cell)
			}
		}
	})

	// Every outstanding check has settled at this point. A newer session
	// may have superseded this one while async validators resolved; its
	// results then stay out of the shared error map. The lock keeps the
	// identity check and the merge atomic with respect to newer sessions.
	v.mu.Lock()
	current := v.active.Load() == s.id
	if current && len(s.failures) > 0 {
		for _, cell := range s.failures.Cells() {
			v.errs.Record(v.src.RowID(cell.Row), cell.Row, cell.Column, cell.Rule.Rule, cell.Rule.Message)
		}
	}
	v.mu.Unlock()

	if !current {
		v.logger.Debug("validation session superseded",
			"session", s.id,
			"started_at", s.startedAt,
		)
	}

	if len(s.failures) == 0 {
		if cb != nil {
			cb(nil)
		}
		return nil
	}

	if current {
		first := firstFailure(v.src, s.failures)
		if v.listener != nil {
			v.listener(FailureContext{
				Failures:   s.failures,
				First:      first,
				Exhaustive: exhaustive,
				AutoPos:    v.opts.AutoPos,
			})
		}
		if v.opts.AutoPos {
			v.present(ctx, first)
		}
	}

	if cb != nil {
		cb(s.failures)
		return nil
	}
	return s.failures
}

// targetColumns returns the columns eligible for this session: present
// in the caller's field selection (all fields when nil) and carrying at
// least one declared rule.
func (v *Validator) targetColumns(fields []string) []grid.Column {
	var wanted map[string]bool
	if len(fields) > 0 {
		wanted = make(map[string]bool, len(fields))
		for _, f := range fields {
			wanted[f] = true
		}
	}

	var cols []grid.Column
	for _, col := range v.src.Columns() {
		if wanted != nil && !wanted[col.Field] {
			continue
		}
		if v.rules.Has(col.Field) {
			cols = append(cols, col)
		}
	}
	return cols
}

// firstFailure picks the deterministic focus target: the failing cell
// with the lowest row index, ties broken by column index. Async
// completion order never influences it because the pick happens after
// every check has settled.
func firstFailure(src grid.DataSource, failures FailureMap) CellError {
	var best CellError
	bestRow, bestCol := -1, -1
	for _, cell := range failures.Cells() {
		rowIdx := src.RowIndex(cell.Row)
		colIdx := src.ColumnIndex(cell.Column)
		if rowIdx < 0 {
			rowIdx = int(^uint(0) >> 1)
		}
		if colIdx < 0 {
			colIdx = int(^uint(0) >> 1)
		}
		if bestRow == -1 || rowIdx < bestRow || (rowIdx == bestRow && colIdx < bestCol) {
			best = cell
			bestRow, bestCol = rowIdx, colIdx
		}
	}
	return best
}

// present drives the post-validation UX: scroll to the failing row,
// enter edit mode on the cell, then open the tooltip when the configured
// style and grid layout call for one.
func (v *Validator) present(ctx context.Context, first CellError) {
	if v.presenter == nil {
		return
	}
	if err := v.presenter.ScrollToRow(ctx, first.Row); err != nil {
		v.logger.Warn("scroll to failing row failed", "error", err)
	}
	if err := v.presenter.EditCell(ctx, first.Row, first.Column); err != nil {
		v.logger.Warn("edit failing cell failed", "error", err)
	}
	if v.opts.Message == MessageTooltip || v.presenter.FixedHeight() {
		v.presenter.ShowTooltip(first.Row, first.Column, first.Rule.Message, first.Rule.Rule.MaxWidth)
	}
}
