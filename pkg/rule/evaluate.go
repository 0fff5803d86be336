package rule

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"unicode/utf8"
)

// Failure is the normalized record of one failing rule: the original
// rule plus the message resolved at failure time.
type Failure struct {
	Rule    Rule
	Message string
}

// Check evaluates the built-in constraints of r against value. It
// returns nil on pass, or a Failure carrying r and its resolved message.
// Custom validators are not invoked here; see Func and Registry.
//
// Emptiness gates everything: a required rule fails on an empty value
// without running further checks, and a non-required rule passes an
// empty value unconditionally.
func Check(r Rule, value any) *Failure {
	if isEmpty(value) {
		if r.Required {
			return fail(r)
		}
		return nil
	}

	if r.Pattern != nil && !r.Pattern.MatchString(stringify(value)) {
		return fail(r)
	}

	switch r.Type {
	case TypeArray:
		n, ok := sliceLen(value)
		if !ok {
			return fail(r)
		}
		if !inBounds(r, float64(n)) {
			return fail(r)
		}
	case TypeNumber:
		n, ok := toNumber(value)
		if !ok {
			return fail(r)
		}
		if !inBounds(r, n) {
			return fail(r)
		}
	case TypeCustom:
		// Nothing built in; the custom validator decides.
	default:
		if r.Type == TypeString {
			if _, ok := value.(string); !ok {
				return fail(r)
			}
		}
		length := utf8.RuneCountInString(stringify(value))
		if !inBounds(r, float64(length)) {
			return fail(r)
		}
	}

	return nil
}

func fail(r Rule) *Failure {
	return &Failure{Rule: r, Message: r.ResolvedMessage()}
}

func inBounds(r Rule, n float64) bool {
	if r.Min != nil && n < *r.Min {
		return false
	}
	if r.Max != nil && n > *r.Max {
		return false
	}
	return true
}

// isEmpty implements the semantic empty-value predicate: nil, empty
// string, nil or zero-length slices, and nil pointers or maps count as
// empty. Everything else, including zero numbers and false, does not.
func isEmpty(value any) bool {
	if value == nil {
		return true
	}
	switch v := value.(type) {
	case string:
		return v == ""
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return rv.Len() == 0
	case reflect.Map, reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// sliceLen returns the length of value when it is a slice or array.
func sliceLen(value any) (int, bool) {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return rv.Len(), true
	}
	return 0, false
}

// toNumber coerces value to a finite float64. Strings are parsed;
// booleans and non-numeric types are rejected.
func toNumber(value any) (float64, bool) {
	var n float64
	switch v := value.(type) {
	case int:
		n = float64(v)
	case int8:
		n = float64(v)
	case int16:
		n = float64(v)
	case int32:
		n = float64(v)
	case int64:
		n = float64(v)
	case uint:
		n = float64(v)
	case uint8:
		n = float64(v)
	case uint16:
		n = float64(v)
	case uint32:
		n = float64(v)
	case uint64:
		n = float64(v)
	case float32:
		n = float64(v)
	case float64:
		n = v
	case string:
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, false
		}
		n = parsed
	default:
		return 0, false
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

// stringify coerces value to text for pattern and length checks.
func stringify(value any) string {
	if value == nil {
		return ""
	}
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprint(value)
}
