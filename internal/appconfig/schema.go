// internal/appconfig/schema.go
package appconfig

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// configSchema describes config/config.json. Unknown keys are rejected so
// that a misspelled setting does not silently fall back to its default.
const configSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "debug":       { "type": "boolean" },
    "logFile":     { "type": "string" },
    "color":       { "type": "string", "enum": ["auto", "always", "never"] },
    "jsonMode":    { "type": "boolean" },
    "interactive": { "type": "boolean" }
  }
}`

// ValidateJSON checks a JSON config document against the config schema.
func ValidateJSON(data []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(configSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}
	if result.Valid() {
		return nil
	}

	var errs []string
	for _, desc := range result.Errors() {
		errs = append(errs, desc.String())
	}
	return fmt.Errorf("JSON validation failed: %s", strings.Join(errs, ", "))
}
