package validate

import "errors"

var (
	// ErrNilSource is returned by New when no data source is supplied.
	ErrNilSource = errors.New("validate: data source cannot be nil")

	// ErrParsingOptions is returned when environment-driven options
	// cannot be parsed.
	ErrParsingOptions = errors.New("validate: failed to parse options from environment")

	// ErrInvalidOption is returned when an option value is outside its
	// allowed set.
	ErrInvalidOption = errors.New("validate: invalid option value")
)
