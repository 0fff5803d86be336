// Package rule models declarative cell validation rules for data grids
// and evaluates their built-in constraints.
//
// A Rule is immutable once constructed from a Config. Construction
// normalizes everything evaluation would otherwise have to branch on:
// the legacy content/message duality collapses into one Message field,
// pattern strings compile into *regexp.Regexp, and type and trigger
// names are checked against the known sets. Evaluation itself is a pure
// function: Check takes a rule and a candidate value and returns nil or
// a Failure carrying the rule and its resolved message.
//
// # Built-in constraint order
//
// Emptiness is decided first. A required rule fails on an empty value
// before any other constraint runs; a non-required rule passes an empty
// value unconditionally. For non-empty values the pattern runs first,
// then the type-specific checks: array rules bound the slice length,
// number rules bound the parsed numeric value, string-like rules bound
// the text length.
//
// # Custom validators
//
// Rules may reference a custom validator either inline (Rule.Validator)
// or by name resolved through a Registry. Validators receive an Args
// bundle with the cell value and its grid coordinates and report failure
// by returning an error. Slow validators should honor ctx cancellation.
//
// # Configuration
//
// ParseSet loads a whole rule set (field name to ordered rule list) from
// YAML. The document shape is validated against an embedded JSON Schema
// before any rule is constructed, so malformed grid configuration fails
// loudly at load time rather than silently at validation time.
//
//	rules, err := rule.ParseSet(configYAML)
//	if err != nil {
//		// malformed grid configuration
//	}
package rule
