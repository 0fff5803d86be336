package rule

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

// setSchema constrains the shape of a rule-set document: field names
// mapped to arrays of rule objects with known attributes only.
const setSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"additionalProperties": {
		"type": "array",
		"items": {
			"type": "object",
			"properties": {
				"required":  {"type": "boolean"},
				"min":       {"type": "number"},
				"max":       {"type": "number"},
				"type":      {"enum": ["", "string", "number", "array", "custom"]},
				"pattern":   {"type": "string"},
				"trigger":   {"enum": ["", "blur", "change"]},
				"validator": {"type": "string"},
				"content":   {"type": "string"},
				"message":   {"type": "string"},
				"maxWidth":  {"type": "integer", "minimum": 0}
			},
			"additionalProperties": false
		}
	}
}`

var compiledSetSchema = jsonschema.MustCompileString("ruleset.schema.json", setSchema)

// ParseSet loads a rule set from a YAML document mapping field names to
// ordered rule lists. The document is validated against the embedded
// schema before any rule is constructed, so unknown attributes or enum
// values fail at load time.
func ParseSet(data []byte) (Set, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}
	if doc == nil {
		return Set{}, nil
	}

	// Round-trip through JSON so schema validation sees canonical JSON
	// value kinds rather than YAML decoder types.
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}
	var jsonDoc any
	if err := json.Unmarshal(raw, &jsonDoc); err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}
	if err := compiledSetSchema.Validate(jsonDoc); err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}

	var configs map[string][]Config
	if err := json.Unmarshal(raw, &configs); err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}

	set := make(Set, len(configs))
	for field, cfgs := range configs {
		rules := make([]Rule, 0, len(cfgs))
		for i, cfg := range cfgs {
			r, err := New(cfg)
			if err != nil {
				return nil, fmt.Errorf("field %q rule %d: %w", field, i, err)
			}
			rules = append(rules, r)
		}
		set[field] = rules
	}
	return set, nil
}
