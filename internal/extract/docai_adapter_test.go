package extract

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/societydesk/receipt-verifier/constants"
)

func TestDocAIAdapterNilClientFallsBack(t *testing.T) {
	a := NewDocAIAdapter(nil, nil)

	// Any input buffer gets the same degraded result.
	docs := []RawDocument{
		{},
		{Content: []byte("jpeg bytes"), MIMEType: "image/jpeg"},
		{Content: make([]byte, 1<<16), MIMEType: "application/pdf"},
	}
	for _, doc := range docs {
		res := a.Extract(context.Background(), doc)

		assert.Equal(t, FallbackRawText, res.Text)
		assert.Equal(t, constants.ReasonBackendUnavailable, res.Reason)
		assert.True(t, res.Fallback())
	}
}

func TestTextResultFallback(t *testing.T) {
	tests := []struct {
		reason constants.ReasonCode
		want   bool
	}{
		{reason: constants.ReasonOK, want: false},
		{reason: constants.ReasonEmptyText, want: false},
		{reason: constants.ReasonBackendUnavailable, want: true},
		{reason: constants.ReasonBackendError, want: true},
		{reason: constants.ReasonProcessorUnconfigured, want: true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TextResult{Reason: tt.reason}.Fallback(), "reason %s", tt.reason)
	}
}
