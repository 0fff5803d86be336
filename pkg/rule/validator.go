package rule

import (
	"context"
	"sort"
	"sync"

	"github.com/gridkit/gridkit/pkg/grid"
)

// Args is the parameter bundle passed to every custom validator.
type Args struct {
	// CellValue is the value under validation, after any caller
	// override.
	CellValue any
	// Rule is the rule being evaluated.
	Rule Rule
	// Rules is the full ordered rule list declared for the field.
	Rules []Rule
	// Row is the data row owning the cell.
	Row grid.Row
	// RowIndex is the row's position in the full dataset, -1 if absent.
	RowIndex int
	// Column identifies the cell's column.
	Column grid.Column
	// ColumnIndex is the column's position, -1 if absent.
	ColumnIndex int
	// Field is the column's data field name.
	Field string
	// Source is the grid data source, for validators that need to look
	// at sibling rows.
	Source grid.DataSource
}

// Func is a custom validator. A nil return is a pass; an error return is
// a failure whose message, when non-empty, replaces the rule's configured
// message. Validators may block on external work; they run concurrently
// with other custom validators of the same cell and should honor ctx.
type Func func(ctx context.Context, args Args) error

// Registry resolves named custom validators. Lookups are pure reads and
// safe for concurrent use with registration.
type Registry struct {
	mu         sync.RWMutex
	validators map[string]Func
}

// NewRegistry creates an empty validator registry.
func NewRegistry() *Registry {
	return &Registry{validators: make(map[string]Func)}
}

// Register adds or replaces a named validator.
func (r *Registry) Register(name string, fn Func) error {
	if name == "" {
		return ErrEmptyValidatorName
	}
	if fn == nil {
		return ErrNilValidator
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.validators[name] = fn
	return nil
}

// Lookup returns the validator registered under name.
func (r *Registry) Lookup(name string) (Func, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.validators[name]
	return fn, ok
}

// Names returns the registered validator names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.validators))
	for name := range r.validators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
