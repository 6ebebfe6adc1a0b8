package quiz

// bankSchemaURL identifies the compiled bank schema.
const bankSchemaURL = "schema://question-bank.json"

// bankSchema is the JSON schema every question bank document must satisfy.
// Cross-field rules (correct answer present in the options) are checked
// separately in Validate.
var bankSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"version": map[string]any{
			"type":        "string",
			"description": "Semantic version of the bank format, major version v1",
		},
		"title": map[string]any{
			"type": "string",
		},
		"questions": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"prompt": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
					"answerOptions": map[string]any{
						"type":     "array",
						"minItems": 1,
						"items": map[string]any{
							"type": "string",
						},
					},
					"correctAnswer": map[string]any{
						"type": "string",
					},
				},
				"required":             []any{"prompt", "answerOptions", "correctAnswer"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"version", "questions"},
	"additionalProperties": false,
}
