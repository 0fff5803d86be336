package rule

import (
	"errors"
	"fmt"
	"regexp"
)

// Type classifies what a rule's min/max constraints bound.
type Type string

const (
	// TypeDefault treats the value as string-like text.
	TypeDefault Type = ""
	// TypeString requires the value to already be a string.
	TypeString Type = "string"
	// TypeNumber requires the value to parse to a finite number.
	TypeNumber Type = "number"
	// TypeArray requires the value to be a slice.
	TypeArray Type = "array"
	// TypeCustom marks a rule whose only check is its custom validator.
	TypeCustom Type = "custom"
)

// Trigger scopes a rule to a user interaction phase. An unset trigger
// applies to every phase.
type Trigger string

const (
	// TriggerAll is the filter value matching every rule regardless of
	// its trigger. It is never set on a rule itself.
	TriggerAll Trigger = "all"
	// TriggerBlur scopes a rule to focus-loss validation.
	TriggerBlur Trigger = "blur"
	// TriggerChange scopes a rule to value-change validation.
	TriggerChange Trigger = "change"
)

// defaultMessage is used when a failing rule carries no configured
// message.
const defaultMessage = "validation failed"

// Rule is one immutable validation constraint attached to a field.
// Construct with New; the zero value has no constraints and passes
// everything.
type Rule struct {
	Required      bool
	Min           *float64
	Max           *float64
	Type          Type
	Pattern       *regexp.Regexp
	Trigger       Trigger
	Validator     Func
	ValidatorName string
	Message       string
	MaxWidth      int
}

// IsCustom reports whether the rule delegates to a custom validator.
func (r Rule) IsCustom() bool {
	return r.Validator != nil || r.ValidatorName != ""
}

// AppliesTo reports whether the rule participates in a validation pass
// for the given trigger. Untagged rules apply to all triggers.
func (r Rule) AppliesTo(trigger Trigger) bool {
	return trigger == TriggerAll || r.Trigger == "" || r.Trigger == trigger
}

// ResolvedMessage returns the rule's message, falling back to a generic
// default when none was configured.
func (r Rule) ResolvedMessage() string {
	if r.Message != "" {
		return r.Message
	}
	return defaultMessage
}

// Config is the declarative form of a rule as it appears in grid
// configuration. Content is the legacy alias of Message; New collapses
// the pair into Rule.Message so evaluation never branches on which field
// was present.
type Config struct {
	Required  bool     `yaml:"required" json:"required,omitempty"`
	Min       *float64 `yaml:"min" json:"min,omitempty"`
	Max       *float64 `yaml:"max" json:"max,omitempty"`
	Type      string   `yaml:"type" json:"type,omitempty"`
	Pattern   string   `yaml:"pattern" json:"pattern,omitempty"`
	Trigger   string   `yaml:"trigger" json:"trigger,omitempty"`
	Validator string   `yaml:"validator" json:"validator,omitempty"`
	Content   string   `yaml:"content" json:"content,omitempty"`
	Message   string   `yaml:"message" json:"message,omitempty"`
	MaxWidth  int      `yaml:"maxWidth" json:"maxWidth,omitempty"`
}

// New constructs an immutable Rule from its declarative config.
func New(cfg Config) (Rule, error) {
	r := Rule{
		Required:      cfg.Required,
		Min:           cfg.Min,
		Max:           cfg.Max,
		ValidatorName: cfg.Validator,
		MaxWidth:      cfg.MaxWidth,
	}

	switch Type(cfg.Type) {
	case TypeDefault, TypeString, TypeNumber, TypeArray, TypeCustom:
		r.Type = Type(cfg.Type)
	default:
		return Rule{}, fmt.Errorf("%w: %q", ErrUnknownType, cfg.Type)
	}

	switch Trigger(cfg.Trigger) {
	case "", TriggerBlur, TriggerChange:
		r.Trigger = Trigger(cfg.Trigger)
	default:
		return Rule{}, fmt.Errorf("%w: %q", ErrUnknownTrigger, cfg.Trigger)
	}

	if cfg.Pattern != "" {
		re, err := regexp.Compile(cfg.Pattern)
		if err != nil {
			return Rule{}, errors.Join(ErrBadPattern, err)
		}
		r.Pattern = re
	}

	// Message wins over the legacy content field when both are set.
	r.Message = cfg.Message
	if r.Message == "" {
		r.Message = cfg.Content
	}

	return r, nil
}

// MustNew is like New but panics on invalid config. Intended for rule
// sets declared in code.
func MustNew(cfg Config) Rule {
	r, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return r
}

// Set maps a field name to its ordered rule list. Declared once in grid
// configuration and read-only during validation.
type Set map[string][]Rule

// Has reports whether any rules are declared for the field.
func (s Set) Has(field string) bool {
	return len(s[field]) > 0
}

// Fields returns the field names with at least one rule, in unspecified
// order.
func (s Set) Fields() []string {
	fields := make([]string, 0, len(s))
	for field, rules := range s {
		if len(rules) > 0 {
			fields = append(fields, field)
		}
	}
	return fields
}
