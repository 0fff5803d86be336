package grid

import "errors"

// ErrNilRow is returned when a nil row is passed to a mutation.
var ErrNilRow = errors.New("grid: row cannot be nil")
