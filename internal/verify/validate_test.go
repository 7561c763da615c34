package verify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClaimJSONStringAmount(t *testing.T) {
	claim, err := ParseClaimJSON([]byte(`{"amount":"500","block_number":"4","flat_number":"12","purpose":"Maintenance"}`))

	require.NoError(t, err)
	assert.Equal(t, "500", claim.Amount)
	assert.Equal(t, "4", claim.BlockNumber)
	assert.Equal(t, "12", claim.FlatNumber)
	assert.Equal(t, "Maintenance", claim.Purpose)
}

func TestParseClaimJSONNumberAmount(t *testing.T) {
	claim, err := ParseClaimJSON([]byte(`{"amount":500.50,"block_number":"4","flat_number":"12","purpose":"Water"}`))

	require.NoError(t, err)
	assert.Equal(t, "500.50", claim.Amount)
}

func TestParseClaimJSONRejectsBadPayloads(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "missing purpose", data: `{"amount":"500","block_number":"4","flat_number":"12"}`},
		{name: "unknown purpose", data: `{"amount":"500","block_number":"4","flat_number":"12","purpose":"Festival"}`},
		{name: "empty block", data: `{"amount":"500","block_number":"","flat_number":"12","purpose":"Water"}`},
		{name: "extra property", data: `{"amount":"500","block_number":"4","flat_number":"12","purpose":"Water","notes":"x"}`},
		{name: "not json", data: `not json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseClaimJSON([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}
