package verify

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/societydesk/receipt-verifier/constants"
	"github.com/societydesk/receipt-verifier/internal/common"
	"github.com/societydesk/receipt-verifier/internal/extract"
	"github.com/societydesk/receipt-verifier/internal/metrics"
	"github.com/societydesk/receipt-verifier/internal/parse"
)

// FallbackConfidence is reported when extraction took the degraded path.
const FallbackConfidence = 0.1

// ExtractionResult is the full outcome of document -> text -> fields.
// Confidence is derived purely from which fields the parser found, except on
// the fallback path where it is pinned to FallbackConfidence.
type ExtractionResult struct {
	RawText    string
	Confidence float64
	Fields     parse.Fields
	Reason     constants.ReasonCode
	Duration   time.Duration
}

// Result is what the receipt-submission handler consumes: the extraction,
// the match score, and the binary decision. No per-field "why rejected"
// breakdown is produced; the reason code only distinguishes extraction paths.
type Result struct {
	Extraction ExtractionResult
	MatchScore float64
	Approved   bool
	Status     constants.VerificationStatus
}

// Verifier runs the whole pipeline synchronously per request: extract,
// parse, score, match, decide. It holds no per-request state and performs no
// retries; a failed extraction lands on the fallback result, never on an
// error to the caller.
type Verifier struct {
	extractor extract.TextExtractor
	threshold float64
	logger    *slog.Logger
}

func NewVerifier(tx extract.TextExtractor, threshold float64, logger *slog.Logger) *Verifier {
	if logger == nil {
		logger = slog.Default()
	}
	if threshold <= 0 {
		threshold = DefaultApprovalThreshold
	}
	return &Verifier{extractor: tx, threshold: threshold, logger: logger}
}

// ExtractReceipt runs stage 1 and 2: text extraction plus field parsing.
// The fallback sentinel is returned as-is with all fields empty and the
// pinned low confidence; it is never fed to the parser.
func (v *Verifier) ExtractReceipt(ctx context.Context, doc extract.RawDocument) ExtractionResult {
	tr := v.extractor.Extract(ctx, doc)
	if tr.Fallback() {
		return ExtractionResult{
			RawText:    tr.Text,
			Confidence: FallbackConfidence,
			Reason:     tr.Reason,
			Duration:   tr.Duration,
		}
	}

	fields := parse.ParseFields(tr.Text)
	return ExtractionResult{
		RawText:    tr.Text,
		Confidence: ConfidenceScore(fields),
		Fields:     fields,
		Reason:     tr.Reason,
		Duration:   tr.Duration,
	}
}

// VerifyReceipt runs the full pipeline for one submission. The request ID is
// taken from the context when the transport layer put one there (so server
// and pipeline log lines correlate); otherwise one is minted here.
func (v *Verifier) VerifyReceipt(ctx context.Context, doc extract.RawDocument, claim ManualClaim) Result {
	rid := common.RequestIDFromContext(ctx)
	if rid == "" {
		rid = uuid.New().String()
	}
	start := time.Now()
	v.logger.Info("verify.start",
		"req_id", rid,
		"society_id", common.SocietyIDFromContext(ctx),
		"member_id", common.MemberIDFromContext(ctx),
		"mime_type", doc.MIMEType,
		"size_bytes", len(doc.Content),
	)

	ex := v.ExtractReceipt(ctx, doc)
	score := MatchScore(ex.Fields, claim)

	// Approval is gated on the match score alone; confidence is computed and
	// exposed but not consulted.
	approved := shouldApproveAt(score, v.threshold)
	status := constants.VerificationRejected
	if approved {
		status = constants.VerificationApproved
	}

	metrics.VerificationsTotal.WithLabelValues(string(status), string(ex.Reason)).Inc()
	metrics.MatchScore.Observe(score)
	metrics.VerificationDuration.Observe(time.Since(start).Seconds())

	v.logger.Info("verify.done",
		"req_id", rid,
		"reason", ex.Reason,
		"confidence", ex.Confidence,
		"match_score", score,
		"approved", approved,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)

	return Result{
		Extraction: ex,
		MatchScore: score,
		Approved:   approved,
		Status:     status,
	}
}
