package loader

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

// schemaJSON is the embedded JSON Schema for mkerrcodes.yaml manifests.
var schemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "$id": "https://github.com/gpg-rs/libgpg-error/schemas/mkerrcodes/v1",
  "title": "mkerrcodes manifest",
  "description": "Locates the libgpg-error definition tables and the generated constant files.",
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "tables": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "sources": { "$ref": "#/$defs/rel_path" },
        "codes": { "$ref": "#/$defs/rel_path" },
        "errnos": { "$ref": "#/$defs/rel_path" }
      }
    },
    "targets": {
      "type": "array",
      "items": { "type": "string", "enum": ["rust_sys", "rust", "go"] },
      "minItems": 1,
      "uniqueItems": true
    },
    "outputs": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "rust_sys": { "$ref": "#/$defs/rel_path" },
        "rust": { "$ref": "#/$defs/rel_path" },
        "go": { "$ref": "#/$defs/rel_path", "pattern": "\\.go$" }
      }
    },
    "go": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "package": { "type": "string", "pattern": "^[a-z][a-z0-9_]*$" },
        "source_type": { "$ref": "#/$defs/go_ident" },
        "code_type": { "$ref": "#/$defs/go_ident" },
        "system_error": { "$ref": "#/$defs/go_ident" }
      }
    }
  },
  "$defs": {
    "rel_path": { "type": "string", "minLength": 1, "pattern": "^[^/]" },
    "go_ident": { "type": "string", "pattern": "^[A-Za-z_][A-Za-z0-9_]*$" }
  }
}`

var compiledSchema *jsonschema.Schema

func init() {
	var schemaDoc interface{}
	if err := json.Unmarshal([]byte(schemaJSON), &schemaDoc); err != nil {
		panic(fmt.Sprintf("failed to decode schema JSON: %v", err))
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource("schema.json", schemaDoc); err != nil {
		panic(fmt.Sprintf("failed to add schema resource: %v", err))
	}
	var err error
	compiledSchema, err = c.Compile("schema.json")
	if err != nil {
		panic(fmt.Sprintf("failed to compile schema: %v", err))
	}
}

// SchemaJSON returns the manifest JSON Schema document.
func SchemaJSON() string {
	return schemaJSON
}

// ValidateSchema validates raw YAML bytes against the manifest JSON Schema.
// An empty document is valid and means "all defaults".
func ValidateSchema(yamlData []byte) error {
	var raw interface{}
	if err := yaml.Unmarshal(yamlData, &raw); err != nil {
		return fmt.Errorf("parsing YAML: %w", err)
	}
	if raw == nil {
		raw = map[string]interface{}{}
	}

	if err := compiledSchema.Validate(convertYAMLToJSON(raw)); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// convertYAMLToJSON converts YAML-parsed values to the types the schema
// validator expects. Integers become float64 the way encoding/json decodes them.
func convertYAMLToJSON(v interface{}) interface{} {
	switch v := v.(type) {
	case map[string]interface{}:
		result := make(map[string]interface{}, len(v))
		for k, val := range v {
			result[k] = convertYAMLToJSON(val)
		}
		return result
	case []interface{}:
		result := make([]interface{}, len(v))
		for i, val := range v {
			result[i] = convertYAMLToJSON(val)
		}
		return result
	case int:
		return float64(v)
	case int64:
		return float64(v)
	default:
		return v
	}
}
