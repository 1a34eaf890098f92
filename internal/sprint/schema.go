package sprint

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

// documentSchema constrains the raw sprint document before the model is
// constructed. It catches shape errors the YAML decoder would report
// confusingly (fractional story points, non-string goals) with one
// ErrValidation per file.
const documentSchema = `{
  "type": "object",
  "required": ["name", "start_date", "end_date"],
  "properties": {
    "id": {"type": "string"},
    "name": {"type": "string"},
    "start_date": {"type": "string", "pattern": "^\\d{4}-\\d{2}-\\d{2}$"},
    "end_date": {"type": "string", "pattern": "^\\d{4}-\\d{2}-\\d{2}$"},
    "goals": {"type": "array", "items": {"type": "string"}},
    "tasks": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "title"],
        "properties": {
          "id": {"type": "string"},
          "title": {"type": "string"},
          "status": {"type": "string"},
          "story_points": {"type": "integer", "minimum": 1},
          "completed_date": {"type": "string", "pattern": "^\\d{4}-\\d{2}-\\d{2}$"}
        }
      }
    }
  }
}`

// validateSchema checks raw YAML bytes against documentSchema. The document
// is converted to JSON first; gojsonschema only speaks JSON.
func validateSchema(data []byte) error {
	var raw any

	unmarshalErr := yaml.Unmarshal(data, &raw)
	if unmarshalErr != nil {
		return fmt.Errorf("%w: %w", ErrValidation, unmarshalErr)
	}

	jsonBytes, marshalErr := json.Marshal(normalizeYAML(raw))
	if marshalErr != nil {
		return fmt.Errorf("convert document to JSON: %w", marshalErr)
	}

	result, validateErr := gojsonschema.Validate(
		gojsonschema.NewStringLoader(documentSchema),
		gojsonschema.NewBytesLoader(jsonBytes),
	)
	if validateErr != nil {
		return fmt.Errorf("validate document schema: %w", validateErr)
	}

	if result.Valid() {
		return nil
	}

	descriptions := make([]string, 0, len(result.Errors()))
	for _, verr := range result.Errors() {
		descriptions = append(descriptions, fmt.Sprintf("%s: %s", verr.Field(), verr.Description()))
	}

	return fmt.Errorf("%w: %s", ErrSchema, strings.Join(descriptions, "; "))
}

// normalizeYAML makes a decoded YAML value JSON-marshalable. yaml.v3 may
// resolve timestamp-shaped scalars to time.Time when decoding into any;
// those must round-trip back to the document's date strings.
func normalizeYAML(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		normalized := make(map[string]any, len(typed))
		for key, val := range typed {
			normalized[key] = normalizeYAML(val)
		}

		return normalized
	case []any:
		normalized := make([]any, len(typed))
		for i, val := range typed {
			normalized[i] = normalizeYAML(val)
		}

		return normalized
	case time.Time:
		return typed.Format(DateLayout)
	default:
		return value
	}
}
