package model

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// scoreSchema is the structural contract the AI response must meet. It
// deliberately leaves the score optional and its range unbounded: an
// answer without a numeric score is still a usable document (the caller
// diverts to the fallback scorer but keeps the extracted fields), and
// out-of-range values are clamped after parsing.
const scoreSchema = `{
  "type": "object",
  "properties": {
    "name":  {"type": ["string", "null"]},
    "email": {"type": ["string", "null"]},
    "phone": {"type": ["string", "null"]},
    "skills": {"type": "array", "items": {"type": "string"}},
    "experience": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "company": {"type": ["string", "null"]},
          "title":   {"type": ["string", "null"]},
          "start":   {"type": ["string", "null"]},
          "end":     {"type": ["string", "null"]},
          "bullets": {"type": "array", "items": {"type": "string"}}
        }
      }
    },
    "score": {"type": "number"},
    "rationale": {"type": "array", "items": {"type": "string"}},
    "recommendedAction": {"type": ["string", "null"]}
  }
}`

var scoreSchemaLoader = gojsonschema.NewStringLoader(scoreSchema)

// ValidateScoreMap validates a parsed AI answer against the score schema.
func ValidateScoreMap(m map[string]interface{}) error {
	res, err := gojsonschema.Validate(scoreSchemaLoader, gojsonschema.NewGoLoader(m))
	if err != nil {
		return err
	}
	if res.Valid() {
		return nil
	}
	msgs := ""
	for _, e := range res.Errors() {
		msgs += fmt.Sprintf("%s; ", e.String())
	}
	return fmt.Errorf("schema validation failed: %s", msgs)
}
