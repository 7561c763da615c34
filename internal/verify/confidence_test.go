package verify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/societydesk/receipt-verifier/internal/parse"
)

func fieldsWith(present ...string) parse.Fields {
	amount := 500.0
	var f parse.Fields
	for _, name := range present {
		switch name {
		case "amount":
			f.Amount = &amount
		case "block":
			f.BlockNumber = "4"
		case "flat":
			f.FlatNumber = "12"
		case "date":
			f.PaymentDate = "2024-01-05"
		case "purpose":
			f.Purpose = "Maintenance"
		}
	}
	return f
}

func TestConfidenceScoreEmptyIsZero(t *testing.T) {
	assert.Equal(t, 0.0, ConfidenceScore(parse.Fields{}))
}

func TestConfidenceScoreKnownValues(t *testing.T) {
	tests := []struct {
		name    string
		present []string
		want    float64
	}{
		{name: "amount only", present: []string{"amount"}, want: 0.30},
		{name: "block only", present: []string{"block"}, want: 0.20},
		{name: "date only", present: []string{"date"}, want: 0.15},
		{name: "amount and purpose", present: []string{"amount", "purpose"}, want: 0.225},
		{name: "block and flat", present: []string{"block", "flat"}, want: 0.20},
		{name: "all five", present: []string{"amount", "block", "flat", "date", "purpose"}, want: 0.20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ConfidenceScore(fieldsWith(tt.present...)), 1e-9)
		})
	}
}

// Adding a lower-weight field to a higher-weight singleton DECREASES the
// score. This locks in the average-of-present-weights behavior; a change
// here means the scoring policy changed.
func TestConfidenceScoreNonMonotonic(t *testing.T) {
	amountOnly := ConfidenceScore(fieldsWith("amount"))
	amountAndPurpose := ConfidenceScore(fieldsWith("amount", "purpose"))

	assert.Greater(t, amountOnly, amountAndPurpose)
}

func TestConfidenceScoreBoundsForAllSubsets(t *testing.T) {
	names := []string{"amount", "block", "flat", "date", "purpose"}
	for mask := 0; mask < 1<<len(names); mask++ {
		var present []string
		for i, name := range names {
			if mask&(1<<i) != 0 {
				present = append(present, name)
			}
		}
		score := ConfidenceScore(fieldsWith(present...))
		assert.GreaterOrEqual(t, score, 0.0, "subset %v", present)
		assert.LessOrEqual(t, score, 1.0, "subset %v", present)
	}
}
