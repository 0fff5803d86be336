package rule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridkit/gridkit/pkg/rule"
)

func TestParseSet(t *testing.T) {
	t.Parallel()

	t.Run("parses a valid rule set", func(t *testing.T) {
		doc := []byte(`
age:
  - required: true
    type: number
    min: 18
    message: must be an adult
name:
  - required: true
    trigger: blur
    content: name is required
  - max: 50
`)
		set, err := rule.ParseSet(doc)
		require.NoError(t, err)

		require.Len(t, set["age"], 1)
		age := set["age"][0]
		assert.True(t, age.Required)
		assert.Equal(t, rule.TypeNumber, age.Type)
		require.NotNil(t, age.Min)
		assert.Equal(t, 18.0, *age.Min)
		assert.Equal(t, "must be an adult", age.Message)

		require.Len(t, set["name"], 2)
		assert.Equal(t, rule.TriggerBlur, set["name"][0].Trigger)
		assert.Equal(t, "name is required", set["name"][0].Message)
	})

	t.Run("empty document yields empty set", func(t *testing.T) {
		set, err := rule.ParseSet(nil)
		require.NoError(t, err)
		assert.Empty(t, set)
	})

	t.Run("rejects unknown rule attributes", func(t *testing.T) {
		doc := []byte(`
age:
  - bogus: true
`)
		_, err := rule.ParseSet(doc)
		assert.ErrorIs(t, err, rule.ErrInvalidConfig)
	})

	t.Run("rejects unknown type enum", func(t *testing.T) {
		doc := []byte(`
age:
  - type: banana
`)
		_, err := rule.ParseSet(doc)
		assert.ErrorIs(t, err, rule.ErrInvalidConfig)
	})

	t.Run("rejects non-array field value", func(t *testing.T) {
		doc := []byte(`
age: 17
`)
		_, err := rule.ParseSet(doc)
		assert.ErrorIs(t, err, rule.ErrInvalidConfig)
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		_, err := rule.ParseSet([]byte("age: [unclosed"))
		assert.ErrorIs(t, err, rule.ErrInvalidConfig)
	})

	t.Run("compiles rule patterns", func(t *testing.T) {
		doc := []byte(`
code:
  - pattern: "^[A-Z]{3}$"
`)
		set, err := rule.ParseSet(doc)
		require.NoError(t, err)
		require.NotNil(t, set["code"][0].Pattern)
		assert.True(t, set["code"][0].Pattern.MatchString("ABC"))
	})
}
