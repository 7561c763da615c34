package verify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/societydesk/receipt-verifier/internal/parse"
)

func extractedFields(amount float64, block, flat, purpose string) parse.Fields {
	return parse.Fields{
		Amount:      &amount,
		BlockNumber: block,
		FlatNumber:  flat,
		Purpose:     purpose,
	}
}

func TestMatchScoreFullMatch(t *testing.T) {
	extracted := extractedFields(500, "4", "12", "Maintenance")
	claim := ManualClaim{Amount: "500", BlockNumber: "4", FlatNumber: "12", Purpose: "Maintenance"}

	assert.Equal(t, 1.0, MatchScore(extracted, claim))
}

func TestMatchScorePartialMismatch(t *testing.T) {
	extracted := extractedFields(500, "4", "12", "Maintenance")
	claim := ManualClaim{Amount: "500", BlockNumber: "7", FlatNumber: "12", Purpose: "Maintenance"}

	assert.InDelta(t, 0.75, MatchScore(extracted, claim), 1e-9)
}

func TestMatchScoreAmountTolerance(t *testing.T) {
	tests := []struct {
		name      string
		extracted float64
		manual    string
		match     bool
	}{
		{name: "exact", extracted: 500.00, manual: "500", match: true},
		{name: "within tolerance", extracted: 500.00, manual: "500.004", match: true},
		{name: "outside tolerance", extracted: 500.00, manual: "500.02", match: false},
		{name: "comma in manual amount", extracted: 1250.50, manual: "1,250.50", match: true},
		{name: "unparseable manual amount", extracted: 500.00, manual: "five hundred", match: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			extracted := parse.Fields{Amount: &tt.extracted}
			claim := ManualClaim{Amount: tt.manual}
			want := 0.0
			if tt.match {
				want = 1.0
			}
			assert.Equal(t, want, MatchScore(extracted, claim))
		})
	}
}

func TestMatchScoreSkipsOneSidedPairs(t *testing.T) {
	// OCR found only the amount; block/flat/purpose claimed but not
	// extracted must be skipped, not counted as mismatches.
	amount := 500.0
	extracted := parse.Fields{Amount: &amount}
	claim := ManualClaim{Amount: "500", BlockNumber: "4", FlatNumber: "12", Purpose: "Maintenance"}

	assert.Equal(t, 1.0, MatchScore(extracted, claim))
}

func TestMatchScoreNoComparablePairs(t *testing.T) {
	claim := ManualClaim{Amount: "500", BlockNumber: "4", FlatNumber: "12", Purpose: "Maintenance"}

	assert.Equal(t, 0.0, MatchScore(parse.Fields{}, claim))
}

func TestMatchScoreEmptyClaimSide(t *testing.T) {
	extracted := extractedFields(500, "4", "12", "Maintenance")

	assert.Equal(t, 0.0, MatchScore(extracted, ManualClaim{}))
}

func TestMatchScoreBlockFlatExactStrings(t *testing.T) {
	// no normalization of leading zeros
	extracted := extractedFields(500, "04", "12", "Maintenance")
	claim := ManualClaim{Amount: "500", BlockNumber: "4", FlatNumber: "12", Purpose: "Maintenance"}

	assert.InDelta(t, 0.75, MatchScore(extracted, claim), 1e-9)
}

func TestMatchScorePurposeCaseInsensitive(t *testing.T) {
	extracted := extractedFields(500, "4", "12", "Maintenance")
	claim := ManualClaim{Amount: "500", BlockNumber: "4", FlatNumber: "12", Purpose: "MAINTENANCE"}

	assert.Equal(t, 1.0, MatchScore(extracted, claim))
}

func TestMatchScoreDateNeverCompared(t *testing.T) {
	extracted := extractedFields(500, "4", "12", "Maintenance")
	extracted.PaymentDate = "1999-01-01"
	claim := ManualClaim{Amount: "500", BlockNumber: "4", FlatNumber: "12", Purpose: "Maintenance"}

	assert.Equal(t, 1.0, MatchScore(extracted, claim))
}
