package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gridkit/gridkit/pkg/grid"
	"github.com/gridkit/gridkit/pkg/rule"
)

// CellError is the outcome of one failing cell: the primary failure plus
// every failing rule recorded for the cell. Rule is always Rules[0];
// synchronous failures come first in declaration order, asynchronous
// ones follow in completion order.
type CellError struct {
	Row    grid.Row
	Column grid.Column
	Rule   rule.Failure
	Rules  []rule.Failure
}

// Error implements the error interface so ValidateCell can surface a
// failing cell as a plain error.
func (e *CellError) Error() string {
	return fmt.Sprintf("validation failed for field %q: %s", e.Column.Field, e.Rule.Message)
}

// FailureMap collects a session's failures keyed by field name. It
// implements the error interface; session operations without a callback
// return it directly as their error.
type FailureMap map[string][]CellError

// Error implements the error interface.
func (m FailureMap) Error() string {
	if len(m) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(m))
	for field, cells := range m {
		for _, cell := range cells {
			parts = append(parts, fmt.Sprintf("%s: %s", field, cell.Rule.Message))
		}
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Cells returns every cell error in the map, in unspecified order.
func (m FailureMap) Cells() []CellError {
	var cells []CellError
	for _, fieldCells := range m {
		cells = append(cells, fieldCells...)
	}
	return cells
}

// AsFailureMap extracts a FailureMap from an error returned by the
// validation operations.
func AsFailureMap(err error) (FailureMap, bool) {
	if err == nil {
		return nil, false
	}
	var m FailureMap
	if errors.As(err, &m) {
		return m, true
	}
	return nil, false
}

// FailureContext is handed to the registered FailureListener when a
// session resolves with failures. First is the deterministic focus
// target: the failing cell with the lowest row index, then column index.
type FailureContext struct {
	Failures   FailureMap
	First      CellError
	Exhaustive bool
	AutoPos    bool
}

// FailureListener observes session failures. It is invoked synchronously
// on the goroutine resolving the session, after all outstanding checks
// have settled and before the session returns.
type FailureListener func(FailureContext)
