package grid

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// rowIDField is the reserved row field holding a synthesized identity for
// rows without a key-field value.
const rowIDField = "_gk_rid"

// MemoryOption configures a MemorySource.
type MemoryOption func(*MemorySource)

// WithKeyField sets the field used as the primary row identity. Rows
// missing a value for it fall back to a synthesized id.
func WithKeyField(field string) MemoryOption {
	return func(s *MemorySource) { s.keyField = field }
}

// WithTreeChildrenField enables plain tree mode with the given children
// field.
func WithTreeChildrenField(field string) MemoryOption {
	return func(s *MemorySource) { s.treeField = field }
}

// WithGroupChildrenField enables grouped mode with the given children
// field.
func WithGroupChildrenField(field string) MemoryOption {
	return func(s *MemorySource) { s.groupField = field }
}

// WithAggregateClassifier registers the predicate deciding whether a row
// is a computed summary row. Nil classifiers are ignored.
func WithAggregateClassifier(fn func(Row) bool) MemoryOption {
	return func(s *MemorySource) {
		if fn != nil {
			s.aggregate = fn
		}
	}
}

// MemorySource is a thread-safe in-memory DataSource with insert, update,
// remove, and pending-delete bookkeeping. It backs the engine's tests and
// hosts that keep their dataset in process.
type MemorySource struct {
	mu         sync.RWMutex
	columns    []Column
	data       []Row
	inserted   []Row
	updated    []Row
	removed    map[string]bool
	pending    map[string]bool
	keyField   string
	treeField  string
	groupField string
	aggregate  func(Row) bool
}

// NewMemorySource creates a MemorySource over the given columns.
func NewMemorySource(columns []Column, opts ...MemoryOption) *MemorySource {
	s := &MemorySource{
		columns:   columns,
		removed:   make(map[string]bool),
		pending:   make(map[string]bool),
		aggregate: func(Row) bool { return false },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Append adds a committed row to the dataset.
func (s *MemorySource) Append(row Row) error {
	if row == nil {
		return ErrNilRow
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.idLocked(row)
	s.data = append(s.data, row)
	return nil
}

// Insert adds a row and records it in the insert working set.
func (s *MemorySource) Insert(row Row) error {
	if row == nil {
		return ErrNilRow
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.idLocked(row)
	s.data = append(s.data, row)
	s.inserted = append(s.inserted, row)
	return nil
}

// MarkUpdated records the row in the update working set. Rows already in
// the insert set are not double-tracked.
func (s *MemorySource) MarkUpdated(row Row) error {
	if row == nil {
		return ErrNilRow
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.idLocked(row)
	for _, r := range s.inserted {
		if s.idLocked(r) == id {
			return nil
		}
	}
	for _, r := range s.updated {
		if s.idLocked(r) == id {
			return nil
		}
	}
	s.updated = append(s.updated, row)
	return nil
}

// Remove marks the row as removed from the working dataset.
func (s *MemorySource) Remove(row Row) error {
	if row == nil {
		return ErrNilRow
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removed[s.idLocked(row)] = true
	return nil
}

// MarkPendingDelete flags the row for deletion without removing it.
func (s *MemorySource) MarkPendingDelete(row Row) error {
	if row == nil {
		return ErrNilRow
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending[s.idLocked(row)] = true
	return nil
}

// Commit clears the insert/update working sets and removal marks, making
// the current dataset the committed baseline.
func (s *MemorySource) Commit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.data[:0]
	for _, row := range s.data {
		if !s.removed[s.idLocked(row)] {
			kept = append(kept, row)
		}
	}
	s.data = kept
	s.inserted = nil
	s.updated = nil
	s.removed = make(map[string]bool)
	s.pending = make(map[string]bool)
}

func (s *MemorySource) Columns() []Column {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Column, len(s.columns))
	copy(out, s.columns)
	return out
}

func (s *MemorySource) FullData() []Row {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Row, len(s.data))
	copy(out, s.data)
	return out
}

func (s *MemorySource) InsertRecords() []Row {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Row, len(s.inserted))
	copy(out, s.inserted)
	return out
}

func (s *MemorySource) UpdateRecords() []Row {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Row, len(s.updated))
	copy(out, s.updated)
	return out
}

func (s *MemorySource) RowID(row Row) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.idLocked(row)
}

func (s *MemorySource) RowIndex(row Row) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.idLocked(row)
	for i, r := range s.data {
		if s.idLocked(r) == id {
			return i
		}
	}
	return -1
}

func (s *MemorySource) ColumnIndex(col Column) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i, c := range s.columns {
		if c.ID == col.ID {
			return i
		}
	}
	return -1
}

func (s *MemorySource) IsAggregate(row Row) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.aggregate(row)
}

func (s *MemorySource) IsRemoved(row Row) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.removed[s.idLocked(row)]
}

func (s *MemorySource) IsPendingDelete(row Row) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending[s.idLocked(row)]
}

func (s *MemorySource) TreeChildrenField() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.treeField
}

func (s *MemorySource) GroupChildrenField() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.groupField
}

// idLocked resolves the row identity, synthesizing and caching one when
// the key field is unset or empty. Callers must hold mu.
func (s *MemorySource) idLocked(row Row) string {
	if s.keyField != "" {
		if v, ok := row[s.keyField]; ok && v != nil {
			return fmt.Sprint(v)
		}
	}
	return s.ensureID(row)
}

func (s *MemorySource) ensureID(row Row) string {
	if v, ok := row[rowIDField]; ok {
		if id, ok := v.(string); ok && id != "" {
			return id
		}
	}
	id := uuid.NewString()
	row[rowIDField] = id
	return id
}
