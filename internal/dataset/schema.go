package dataset

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Input document schemas. Shape only; the question-level checks live
// in Check.
var (
	responsesSchema = &documentSchema{
		name: "patient-responses",
		definition: map[string]any{
			"type": "object",
			"additionalProperties": map[string]any{
				"type":                 "object",
				"additionalProperties": map[string]any{"type": "string"},
			},
		},
	}

	codesSchema = &documentSchema{
		name: "billing-codes",
		definition: map[string]any{
			"type": "object",
			"additionalProperties": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
	}
)

// documentSchema pairs a schema definition with its name for error
// messages and cache keys.
type documentSchema struct {
	name       string
	definition map[string]any
}

// schemaCache caches compiled JSON schemas by name.
var schemaCache sync.Map // map[string]*jsonschema.Schema

// validateDocument validates raw JSON against the given schema.
func validateDocument(schema *documentSchema, raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("%s: invalid JSON: %w", schema.name, err)
	}

	compiled, err := compiledSchema(schema)
	if err != nil {
		return fmt.Errorf("compile schema %q: %w", schema.name, err)
	}

	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("%s: schema validation failed: %w", schema.name, err)
	}
	return nil
}

// compiledSchema returns a cached compiled schema or compiles and
// caches it.
func compiledSchema(schema *documentSchema) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(schema.name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The jsonschema library expects a parsed JSON value (any), not
	// raw bytes. Marshal then unmarshal to get a clean representation.
	defBytes, err := json.Marshal(schema.definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	schemaURL := fmt.Sprintf("schema://%s.json", schema.name)
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}

	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(schema.name, compiled)
	return compiled, nil
}
