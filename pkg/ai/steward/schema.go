package steward

import (
	"encoding/json"

	"idea-copilot-be/pkg/ai/oracle"
)

// stewardResponseSchema is distinct from the copilot answer schema: no
// natural-language answer, just optional suggestion lists. Inner objects stay
// permissive; coercion validates them item by item.
var stewardResponseSchema = &oracle.ResponseSchema{
	Name: "seed_steward_suggestions",
	Schema: json.RawMessage(`{
		"type": "object",
		"additionalProperties": false,
		"properties": {
			"summary_update": {
				"type": "object",
				"additionalProperties": true
			},
			"insight_suggestions": {
				"type": "array",
				"items": {"type": "object", "additionalProperties": true}
			},
			"experiment_suggestions": {
				"type": "array",
				"items": {"type": "object", "additionalProperties": true}
			},
			"principle_suggestions": {
				"type": "array",
				"items": {"type": "object", "additionalProperties": true}
			}
		}
	}`),
}
