package verify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShouldApproveThresholdBoundary(t *testing.T) {
	tests := []struct {
		score float64
		want  bool
	}{
		{score: 0.0, want: false},
		{score: 0.75, want: false},
		{score: 0.849999, want: false},
		{score: 0.85, want: true},
		{score: 0.86, want: true},
		{score: 1.0, want: true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ShouldApprove(tt.score), "score %v", tt.score)
	}
}
