package verify

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/societydesk/receipt-verifier/constants"
	"github.com/societydesk/receipt-verifier/internal/common"
	"github.com/societydesk/receipt-verifier/internal/extract"
)

// stubExtractor returns a canned stage-1 result regardless of input.
type stubExtractor struct {
	result extract.TextResult
}

func (s stubExtractor) Extract(_ context.Context, _ extract.RawDocument) extract.TextResult {
	return s.result
}

func textExtractor(text string) stubExtractor {
	return stubExtractor{result: extract.TextResult{Text: text, Reason: constants.ReasonOK}}
}

func fallbackExtractor(reason constants.ReasonCode) stubExtractor {
	return stubExtractor{result: extract.TextResult{Text: extract.FallbackRawText, Reason: reason}}
}

func testDoc() extract.RawDocument {
	return extract.RawDocument{Content: []byte("not a real image"), MIMEType: "image/jpeg"}
}

func TestVerifyReceiptCleanMatch(t *testing.T) {
	v := NewVerifier(textExtractor("Rs. 500 Block 4 Flat 12 Maintenance paid on 05/01/2024"), 0, nil)
	claim := ManualClaim{Amount: "500", BlockNumber: "4", FlatNumber: "12", Purpose: "Maintenance"}

	res := v.VerifyReceipt(context.Background(), testDoc(), claim)

	require.NotNil(t, res.Extraction.Fields.Amount)
	assert.InDelta(t, 500.0, *res.Extraction.Fields.Amount, 0.001)
	assert.Equal(t, "4", res.Extraction.Fields.BlockNumber)
	assert.Equal(t, "12", res.Extraction.Fields.FlatNumber)
	assert.Equal(t, "2024-01-05", res.Extraction.Fields.PaymentDate)
	assert.Equal(t, "Maintenance", res.Extraction.Fields.Purpose)

	assert.Equal(t, 1.0, res.MatchScore)
	assert.True(t, res.Approved)
	assert.Equal(t, constants.VerificationApproved, res.Status)
}

func TestVerifyReceiptPartialMismatchRejected(t *testing.T) {
	v := NewVerifier(textExtractor("Rs. 500 Block 4 Flat 12 Maintenance paid on 05/01/2024"), 0, nil)
	claim := ManualClaim{Amount: "500", BlockNumber: "7", FlatNumber: "12", Purpose: "Maintenance"}

	res := v.VerifyReceipt(context.Background(), testDoc(), claim)

	assert.InDelta(t, 0.75, res.MatchScore, 1e-9)
	assert.False(t, res.Approved)
	assert.Equal(t, constants.VerificationRejected, res.Status)
}

func TestVerifyReceiptUnrecognizedText(t *testing.T) {
	v := NewVerifier(textExtractor("nothing useful in here"), 0, nil)
	claim := ManualClaim{Amount: "500", BlockNumber: "4", FlatNumber: "12", Purpose: "Maintenance"}

	res := v.VerifyReceipt(context.Background(), testDoc(), claim)

	assert.Equal(t, 0.0, res.Extraction.Confidence)
	assert.Equal(t, 0.0, res.MatchScore)
	assert.False(t, res.Approved)
}

func TestExtractReceiptFallbackDeterminism(t *testing.T) {
	for _, reason := range []constants.ReasonCode{
		constants.ReasonBackendUnavailable,
		constants.ReasonBackendError,
		constants.ReasonProcessorUnconfigured,
	} {
		v := NewVerifier(fallbackExtractor(reason), 0, nil)

		ex := v.ExtractReceipt(context.Background(), testDoc())

		assert.Equal(t, FallbackConfidence, ex.Confidence, "reason %s", reason)
		assert.Equal(t, extract.FallbackRawText, ex.RawText, "reason %s", reason)
		assert.Nil(t, ex.Fields.Amount, "reason %s", reason)
		assert.Empty(t, ex.Fields.BlockNumber, "reason %s", reason)
		assert.Empty(t, ex.Fields.FlatNumber, "reason %s", reason)
		assert.Empty(t, ex.Fields.PaymentDate, "reason %s", reason)
		assert.Empty(t, ex.Fields.Purpose, "reason %s", reason)
		assert.Equal(t, reason, ex.Reason, "reason %s", reason)
	}
}

func TestVerifyReceiptFallbackAutoRejected(t *testing.T) {
	v := NewVerifier(fallbackExtractor(constants.ReasonBackendError), 0, nil)
	claim := ManualClaim{Amount: "500", BlockNumber: "4", FlatNumber: "12", Purpose: "Maintenance"}

	res := v.VerifyReceipt(context.Background(), testDoc(), claim)

	assert.Equal(t, 0.0, res.MatchScore)
	assert.False(t, res.Approved)
	assert.Equal(t, constants.VerificationRejected, res.Status)
}

func TestVerifyReceiptUsesContextRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	v := NewVerifier(textExtractor("Rs. 500 Block 4 Flat 12 Maintenance"), 0, logger)
	claim := ManualClaim{Amount: "500", BlockNumber: "4", FlatNumber: "12", Purpose: "Maintenance"}

	ctx := common.WithRequestID(context.Background(), "req-test-42")
	ctx = common.WithSocietyID(ctx, "soc-7")
	v.VerifyReceipt(ctx, testDoc(), claim)

	logs := buf.String()
	assert.Contains(t, logs, `"req_id":"req-test-42"`)
	assert.Contains(t, logs, `"society_id":"soc-7"`)
}

func TestVerifierCustomThreshold(t *testing.T) {
	v := NewVerifier(textExtractor("Rs. 500 Block 4 Flat 12 Maintenance"), 0.75, nil)
	claim := ManualClaim{Amount: "500", BlockNumber: "7", FlatNumber: "12", Purpose: "Maintenance"}

	res := v.VerifyReceipt(context.Background(), testDoc(), claim)

	assert.InDelta(t, 0.75, res.MatchScore, 1e-9)
	assert.True(t, res.Approved)
}
