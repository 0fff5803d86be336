package rule

import "errors"

var (
	// ErrUnknownType is returned when a rule config names a type outside
	// the supported set.
	ErrUnknownType = errors.New("rule: unknown rule type")

	// ErrUnknownTrigger is returned when a rule config names a trigger
	// outside blur/change.
	ErrUnknownTrigger = errors.New("rule: unknown trigger")

	// ErrBadPattern is returned when a rule pattern does not compile.
	ErrBadPattern = errors.New("rule: invalid pattern")

	// ErrInvalidConfig is returned when a rule-set document fails schema
	// validation.
	ErrInvalidConfig = errors.New("rule: invalid rule-set configuration")

	// ErrEmptyValidatorName is returned when registering a validator
	// under an empty name.
	ErrEmptyValidatorName = errors.New("rule: validator name cannot be empty")

	// ErrNilValidator is returned when registering a nil validator
	// function.
	ErrNilValidator = errors.New("rule: validator cannot be nil")
)
