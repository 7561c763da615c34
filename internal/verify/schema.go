package verify

import (
	"github.com/societydesk/receipt-verifier/constants"
)

// BuildClaimJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map for validating claim payloads that arrive as JSON (batch
// imports, the runverify CLI).
func BuildClaimJSONSchema() map[string]any {
	props := map[string]any{
		// submission forms send the amount as either a string or a number
		"amount": map[string]any{
			"type": []string{"string", "number"},
		},
		"block_number": map[string]any{"type": "string", "minLength": 1},
		"flat_number":  map[string]any{"type": "string", "minLength": 1},
		"purpose": map[string]any{
			"type": "string",
			"enum": constants.PurposesAsStringSlice(),
		},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required":             []string{"amount", "block_number", "flat_number", "purpose"},
	}
}
