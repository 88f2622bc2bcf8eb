package copilot

import (
	"encoding/json"

	"idea-copilot-be/pkg/ai/oracle"
)

// copilotResponseSchema constrains the copilot completion. The top level is
// closed; "structured" stays permissive because oracles routinely emit
// well-formed-but-off-schema JSON and coercion handles the rest.
var copilotResponseSchema = &oracle.ResponseSchema{
	Name: "copilot_answer",
	Schema: json.RawMessage(`{
		"type": "object",
		"additionalProperties": false,
		"required": ["answer", "mode"],
		"properties": {
			"answer": {
				"type": "string",
				"description": "Natural-language answer grounded in the provided context."
			},
			"mode": {
				"type": "string",
				"enum": ["generic_answer", "seed_proposal", "insight", "experiment_suggestion", "principle_suggestion"]
			},
			"structured": {
				"type": "object",
				"additionalProperties": true,
				"description": "Optional typed payload for non-generic modes."
			}
		}
	}`),
}
