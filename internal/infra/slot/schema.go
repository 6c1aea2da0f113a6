package slot

import (
	"errors"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

const schemaURL = "todos.schema.json"

// tasksSchema describes the persisted slot value.
// Extra properties are tolerated so that values written by other clients still load.
const tasksSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "text", "completed"],
    "properties": {
      "id": {"type": "integer"},
      "text": {"type": "string"},
      "completed": {"type": "boolean"}
    }
  }
}`

var tasksValidator = mustCompileSchema()

type schemaValidator struct {
	schema *jsonschema.Schema
}

func compileSchema() (*schemaValidator, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaURL, strings.NewReader(tasksSchema)); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}
	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return &schemaValidator{schema: schema}, nil
}

func mustCompileSchema() *schemaValidator {
	v, err := compileSchema()
	if err != nil {
		// Should never happen with the embedded schema
		panic(err)
	}
	return v
}

// validate checks doc, a value produced by encoding/json, against the schema.
// The returned error names the first offending location.
func (v *schemaValidator) validate(doc any) error {
	err := v.schema.Validate(doc)
	if err == nil {
		return nil
	}

	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return err
	}
	leaf := firstLeaf(ve)
	location := leaf.InstanceLocation
	if location == "" {
		location = "/"
	}
	return fmt.Errorf("%s: %s", location, leaf.Message)
}

// firstLeaf descends to the first validation error without causes.
func firstLeaf(ve *jsonschema.ValidationError) *jsonschema.ValidationError {
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	return ve
}
