package rule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridkit/gridkit/pkg/rule"
)

func floatPtr(f float64) *float64 { return &f }

func TestCheckRequired(t *testing.T) {
	t.Parallel()

	t.Run("required empty value fails without constraint checks", func(t *testing.T) {
		// The pattern and bounds would also fail, but the required check
		// must short-circuit first with the rule's own message.
		r := rule.MustNew(rule.Config{
			Required: true,
			Min:      floatPtr(5),
			Pattern:  `^\d+$`,
			Message:  "value is required",
		})
		f := rule.Check(r, nil)
		require.NotNil(t, f)
		assert.Equal(t, "value is required", f.Message)

		f = rule.Check(r, "")
		require.NotNil(t, f)
	})

	t.Run("optional empty value passes vacuously", func(t *testing.T) {
		r := rule.MustNew(rule.Config{
			Min:     floatPtr(5),
			Max:     floatPtr(10),
			Pattern: `^\d+$`,
		})
		assert.Nil(t, rule.Check(r, nil))
		assert.Nil(t, rule.Check(r, ""))
	})

	t.Run("optional empty slice passes vacuously", func(t *testing.T) {
		r := rule.MustNew(rule.Config{Type: "array", Min: floatPtr(1)})
		assert.Nil(t, rule.Check(r, []any{}))
	})

	t.Run("required empty slice fails", func(t *testing.T) {
		r := rule.MustNew(rule.Config{Type: "array", Required: true})
		assert.NotNil(t, rule.Check(r, []string{}))
	})

	t.Run("zero number is not empty", func(t *testing.T) {
		r := rule.MustNew(rule.Config{Required: true, Type: "number"})
		assert.Nil(t, rule.Check(r, 0))
	})
}

func TestCheckNumber(t *testing.T) {
	t.Parallel()

	adult := rule.MustNew(rule.Config{
		Type:     "number",
		Required: true,
		Min:      floatPtr(18),
		Message:  "must be at least 18",
	})

	t.Run("below minimum fails with rule message", func(t *testing.T) {
		f := rule.Check(adult, 15)
		require.NotNil(t, f)
		assert.Equal(t, "must be at least 18", f.Message)
	})

	t.Run("at or above minimum passes", func(t *testing.T) {
		assert.Nil(t, rule.Check(adult, 18))
		assert.Nil(t, rule.Check(adult, 20))
	})

	t.Run("nil fails as required empty", func(t *testing.T) {
		assert.NotNil(t, rule.Check(adult, nil))
	})

	t.Run("non-numeric value fails regardless of required", func(t *testing.T) {
		optional := rule.MustNew(rule.Config{Type: "number"})
		assert.NotNil(t, rule.Check(optional, "abc"))
		assert.NotNil(t, rule.Check(optional, true))
	})

	t.Run("numeric string is coerced", func(t *testing.T) {
		assert.Nil(t, rule.Check(adult, "21"))
		assert.NotNil(t, rule.Check(adult, "12"))
	})

	t.Run("maximum bounds the value", func(t *testing.T) {
		r := rule.MustNew(rule.Config{Type: "number", Max: floatPtr(100)})
		assert.Nil(t, rule.Check(r, 100))
		assert.NotNil(t, rule.Check(r, 101))
	})
}

func TestCheckArray(t *testing.T) {
	t.Parallel()

	tags := rule.MustNew(rule.Config{Type: "array", Min: floatPtr(1)})

	t.Run("empty slice passes when not required", func(t *testing.T) {
		assert.Nil(t, rule.Check(tags, []string{}))
	})

	t.Run("minimum bounds the length", func(t *testing.T) {
		assert.Nil(t, rule.Check(tags, []string{"a"}))
	})

	t.Run("non-slice value fails", func(t *testing.T) {
		assert.NotNil(t, rule.Check(tags, "x"))
	})

	t.Run("maximum bounds the length", func(t *testing.T) {
		r := rule.MustNew(rule.Config{Type: "array", Max: floatPtr(2)})
		assert.Nil(t, rule.Check(r, []int{1, 2}))
		assert.NotNil(t, rule.Check(r, []int{1, 2, 3}))
	})
}

func TestCheckString(t *testing.T) {
	t.Parallel()

	t.Run("string type rejects non-strings", func(t *testing.T) {
		r := rule.MustNew(rule.Config{Type: "string"})
		assert.NotNil(t, rule.Check(r, 42))
		assert.Nil(t, rule.Check(r, "hello"))
	})

	t.Run("default type bounds stringified length", func(t *testing.T) {
		r := rule.MustNew(rule.Config{Min: floatPtr(2), Max: floatPtr(4)})
		assert.NotNil(t, rule.Check(r, "a"))
		assert.Nil(t, rule.Check(r, "abc"))
		assert.NotNil(t, rule.Check(r, "abcde"))
		assert.Nil(t, rule.Check(r, 1234))
	})

	t.Run("length counts runes not bytes", func(t *testing.T) {
		r := rule.MustNew(rule.Config{Max: floatPtr(3)})
		assert.Nil(t, rule.Check(r, "äöü"))
	})
}

func TestCheckPattern(t *testing.T) {
	t.Parallel()

	t.Run("failing pattern is an immediate fail regardless of type", func(t *testing.T) {
		r := rule.MustNew(rule.Config{Type: "number", Pattern: `^\d{2}$`})
		assert.NotNil(t, rule.Check(r, 123))
		assert.Nil(t, rule.Check(r, 42))
	})

	t.Run("value is coerced to text for matching", func(t *testing.T) {
		r := rule.MustNew(rule.Config{Pattern: `^ab+$`})
		assert.Nil(t, rule.Check(r, "abb"))
		assert.NotNil(t, rule.Check(r, "ba"))
	})
}

func TestCheckMessageFallback(t *testing.T) {
	t.Parallel()

	r := rule.MustNew(rule.Config{Required: true})
	f := rule.Check(r, nil)
	require.NotNil(t, f)
	assert.Equal(t, "validation failed", f.Message)
}
