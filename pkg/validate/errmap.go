package validate

import (
	"sync"

	"github.com/gridkit/gridkit/pkg/grid"
	"github.com/gridkit/gridkit/pkg/rule"
)

// Entry is one recorded validation error for a row/column pair.
type Entry struct {
	RowID   string
	Row     grid.Row
	Column  grid.Column
	Rule    rule.Rule
	Content string
}

// ErrorMap is the process-lifetime store of current validation errors,
// keyed by "<rowID>:<columnID>". In single-message mode it never holds
// more than one entry; recording replaces the map and any clear empties
// it. Safe for concurrent use.
type ErrorMap struct {
	mu      sync.RWMutex
	single  bool
	entries map[string]Entry
}

// NewErrorMap creates an empty store. Single-message mode collapses the
// map to the most recently recorded failure.
func NewErrorMap(single bool) *ErrorMap {
	return &ErrorMap{
		single:  single,
		entries: make(map[string]Entry),
	}
}

func entryKey(rowID, columnID string) string {
	return rowID + ":" + columnID
}

// Record upserts the failure for the row/column pair. In single-message
// mode the new entry replaces the whole map.
func (m *ErrorMap) Record(rowID string, row grid.Row, col grid.Column, r rule.Rule, content string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.single {
		m.entries = make(map[string]Entry, 1)
	}
	m.entries[entryKey(rowID, col.ID)] = Entry{
		RowID:   rowID,
		Row:     row,
		Column:  col,
		Rule:    r,
		Content: content,
	}
}

// Clear removes entries. With no row ids and no column ids everything is
// cleared. Row ids alone clear all entries for those rows, column ids
// alone all entries for those columns, and both together exactly the
// row-by-column intersection. Single-message mode always clears the
// whole map: finer granularity is meaningless with one entry.
func (m *ErrorMap) Clear(rowIDs, columnIDs []string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.single || (len(rowIDs) == 0 && len(columnIDs) == 0) {
		m.entries = make(map[string]Entry)
		return
	}

	rows := make(map[string]bool, len(rowIDs))
	for _, id := range rowIDs {
		rows[id] = true
	}
	cols := make(map[string]bool, len(columnIDs))
	for _, id := range columnIDs {
		cols[id] = true
	}

	for key, entry := range m.entries {
		rowMatch := len(rows) == 0 || rows[entry.RowID]
		colMatch := len(cols) == 0 || cols[entry.Column.ID]
		if rowMatch && colMatch {
			delete(m.entries, key)
		}
	}
}

// Get returns the entry for the row/column pair.
func (m *ErrorMap) Get(rowID, columnID string) (Entry, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	entry, ok := m.entries[entryKey(rowID, columnID)]
	return entry, ok
}

// Len returns the number of recorded entries.
func (m *ErrorMap) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// Entries returns a snapshot of the store.
func (m *ErrorMap) Entries() map[string]Entry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]Entry, len(m.entries))
	for k, v := range m.entries {
		out[k] = v
	}
	return out
}
