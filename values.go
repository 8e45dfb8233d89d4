package placeholder

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParseValues decodes a YAML mapping document into a value mapping for
// Render. JSON documents work too, since JSON is a subset of YAML.
//
// The document must be a flat mapping of names to scalar values:
//
//	greet: Hello
//	name: Homer
//
// Decode failures, including non-mapping documents and nested values, are
// reported wrapping ErrValues. An empty document yields an empty mapping.
func ParseValues(data []byte) (map[string]string, error) {
	var values map[string]string
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValues, err)
	}
	if values == nil {
		values = map[string]string{}
	}
	return values, nil
}
