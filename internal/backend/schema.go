package backend

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// quizSchemaDef is the JSON Schema a /generate-quiz response must satisfy
// before any question is accepted into a session. Option maps allow 2-5
// single-letter labels; the quiz array itself may be empty (the client
// treats empty as malformed separately, with a clearer message).
var quizSchemaDef = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"quiz": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"question": map[string]any{"type": "string", "minLength": 1},
					"options": map[string]any{
						"type":          "object",
						"minProperties": 2,
						"maxProperties": 5,
						"patternProperties": map[string]any{
							"^[A-E]$": map[string]any{"type": "string"},
						},
						"additionalProperties": false,
					},
					"correct_answer": map[string]any{"type": "string", "pattern": "^[A-E]$"},
					"explanation":    map[string]any{"type": "string"},
					"topic":          map[string]any{"type": "string"},
					"subject":        map[string]any{"type": "string"},
					"difficulty":     map[string]any{"type": "string"},
				},
				"required": []any{"question", "options", "correct_answer"},
			},
		},
	},
	"required": []any{"quiz"},
}

var (
	quizSchemaOnce sync.Once
	quizSchema     *jsonschema.Schema
	quizSchemaErr  error
)

// validateQuizResponse checks raw against the quiz response schema.
// Returns *ErrMalformedResponse on any failure.
func validateQuizResponse(raw json.RawMessage) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &ErrMalformedResponse{Content: raw, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	compiled, err := compiledQuizSchema()
	if err != nil {
		return &ErrMalformedResponse{Content: raw, Err: fmt.Errorf("compile quiz schema: %w", err)}
	}

	if err := compiled.Validate(parsed); err != nil {
		return &ErrMalformedResponse{Content: raw, Err: fmt.Errorf("schema validation failed: %w", err)}
	}
	return nil
}

func compiledQuizSchema() (*jsonschema.Schema, error) {
	quizSchemaOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value, not raw bytes.
		defBytes, err := json.Marshal(quizSchemaDef)
		if err != nil {
			quizSchemaErr = err
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			quizSchemaErr = err
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://quiz-response.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			quizSchemaErr = err
			return
		}
		quizSchema, quizSchemaErr = c.Compile(schemaURL)
	})
	return quizSchema, quizSchemaErr
}
