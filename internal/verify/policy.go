package verify

// DefaultApprovalThreshold gates auto-approval on the match score.
const DefaultApprovalThreshold = 0.85

// ShouldApprove is the whole approval policy: approve iff the match score
// reaches the threshold. The confidence score is informational only and is
// never consulted here.
func ShouldApprove(matchScore float64) bool {
	return matchScore >= DefaultApprovalThreshold
}

// shouldApproveAt is the threshold-parameterized form used by the Verifier.
func shouldApproveAt(matchScore, threshold float64) bool {
	return matchScore >= threshold
}
