package extract

import (
	"context"
	"time"

	"github.com/societydesk/receipt-verifier/constants"
)

// FallbackRawText is the sentinel returned when text extraction is not
// possible; downstream screens show it verbatim to prompt manual entry.
const FallbackRawText = "Manual entry required - automatic text extraction unavailable"

// RawDocument is one receipt upload: an opaque byte buffer plus its MIME
// type. It lives only for the duration of a single verification call.
type RawDocument struct {
	Content  []byte
	MIMEType string
}

// TextResult is the outcome of stage 1: document -> text. There is no error
// side: every failure mode degrades to the fallback sentinel and is reported
// through the reason code instead.
type TextResult struct {
	Text     string
	Reason   constants.ReasonCode
	Duration time.Duration
}

// Fallback reports whether this result came from the degraded path.
func (r TextResult) Fallback() bool {
	return r.Reason != constants.ReasonOK && r.Reason != constants.ReasonEmptyText
}

// TextExtractor is stage 1 of the verification pipeline.
type TextExtractor interface {
	Extract(ctx context.Context, doc RawDocument) TextResult
}
