package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const schemaURL = "pyramid-scene.schema.json"

const schemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "pyramid_base_size": {"type": "integer"},
    "tree_count":        {"type": "integer", "minimum": 0},
    "forest_radius":     {"type": "number", "exclusiveMinimum": 0},
    "tree_spacing":      {"type": "number", "exclusiveMinimum": 0},
    "rotation_speed":    {"type": "number"},
    "cycle_duration":    {"type": "number", "exclusiveMinimum": 0},
    "ground_size":       {"type": "number", "exclusiveMinimum": 0},
    "seed":              {"type": "integer", "minimum": 0}
  }
}`

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = jsonschema.CompileString(schemaURL, schemaJSON)
	})
	return schema, schemaErr
}

// validateDocument checks a decoded YAML document against the config schema
// The document is round-tripped through JSON so numbers reach the validator as json.Number
func validateDocument(doc any) error {
	s, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := s.Validate(v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}
