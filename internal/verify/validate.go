package verify

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}

// ParseClaimJSON validates and decodes a claim payload.
func ParseClaimJSON(data []byte) (ManualClaim, error) {
	if err := ValidateJSONAgainstSchema(BuildClaimJSONSchema(), data); err != nil {
		return ManualClaim{}, err
	}
	var claim ManualClaim
	if err := json.Unmarshal(data, &claim); err != nil {
		return ManualClaim{}, fmt.Errorf("decode claim: %w", err)
	}
	return claim, nil
}
