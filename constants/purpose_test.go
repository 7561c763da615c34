package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizePurpose(t *testing.T) {
	tests := []struct {
		in   string
		want Purpose
		ok   bool
	}{
		{in: "maintenance", want: Maintenance, ok: true},
		{in: "  WATER  ", want: Water, ok: true},
		{in: "Parking", want: Parking, ok: true},
		{in: "festival", ok: false},
		{in: "", ok: false},
	}

	for _, tt := range tests {
		got, ok := CanonicalizePurpose(tt.in)
		assert.Equal(t, tt.ok, ok, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestPurposeVocabularyOrder(t *testing.T) {
	// The parser depends on this exact order for its tie-break.
	assert.Equal(t,
		[]string{"Maintenance", "Water", "Electricity", "Parking", "Security", "Garbage"},
		PurposesAsStringSlice())
}
