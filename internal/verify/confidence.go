package verify

import (
	"github.com/societydesk/receipt-verifier/internal/parse"
)

// Per-field weights; they sum to 1.00 when all five fields are present.
const (
	weightAmount      = 0.30
	weightBlockNumber = 0.20
	weightFlatNumber  = 0.20
	weightPaymentDate = 0.15
	weightPurpose     = 0.15
)

// ConfidenceScore rates how much the parser managed to pull out of the text.
// It is a pure function of which fields are present, never of their
// correctness against the claim.
//
// The score is the AVERAGE weight of present fields, not the sum: a result
// holding only the amount scores 0.30, and adding purpose lowers it to
// 0.225. That non-monotonicity is contracted behavior; do not change it to a
// sum without a product decision.
func ConfidenceScore(fields parse.Fields) float64 {
	var sum float64
	var present int

	if fields.Amount != nil {
		sum += weightAmount
		present++
	}
	if fields.BlockNumber != "" {
		sum += weightBlockNumber
		present++
	}
	if fields.FlatNumber != "" {
		sum += weightFlatNumber
		present++
	}
	if fields.PaymentDate != "" {
		sum += weightPaymentDate
		present++
	}
	if fields.Purpose != "" {
		sum += weightPurpose
		present++
	}

	if present == 0 {
		return 0
	}
	return sum / float64(present)
}
