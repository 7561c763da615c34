package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/societydesk/receipt-verifier/internal/verify"
)

func TestValidateClaim(t *testing.T) {
	full := verify.ManualClaim{Amount: "500", BlockNumber: "4", FlatNumber: "12", Purpose: "Maintenance"}
	require.NoError(t, validateClaim(full))

	// Every claim field is required: the audit schema rejects empty claim
	// columns, so a partial claim must be refused before a decision is made.
	tests := []struct {
		name  string
		claim verify.ManualClaim
	}{
		{name: "missing amount", claim: verify.ManualClaim{BlockNumber: "4", FlatNumber: "12", Purpose: "Maintenance"}},
		{name: "missing block", claim: verify.ManualClaim{Amount: "500", FlatNumber: "12", Purpose: "Maintenance"}},
		{name: "missing flat", claim: verify.ManualClaim{Amount: "500", BlockNumber: "4", Purpose: "Maintenance"}},
		{name: "missing purpose", claim: verify.ManualClaim{Amount: "500", BlockNumber: "4", FlatNumber: "12"}},
		{name: "whitespace amount", claim: verify.ManualClaim{Amount: "  ", BlockNumber: "4", FlatNumber: "12", Purpose: "Maintenance"}},
		{name: "empty claim", claim: verify.ManualClaim{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateClaim(tt.claim)
			require.Error(t, err)
			assert.Equal(t, codes.InvalidArgument, status.Code(err))
		})
	}
}

func TestTrimAmount(t *testing.T) {
	assert.Equal(t, "500", trimAmount(500.0))
	assert.Equal(t, "500.5", trimAmount(500.50))
	assert.Equal(t, "500.25", trimAmount(500.25))
}
