package extract

import (
	"context"
	"log/slog"
	"time"

	"github.com/societydesk/receipt-verifier/constants"
	"github.com/societydesk/receipt-verifier/internal/docai"
	"github.com/societydesk/receipt-verifier/internal/metrics"
)

// DocAIAdapter implements TextExtractor against the Document AI client. The
// client is injected at construction time by the composition root; nil is the
// explicit "backend unavailable for the life of this process" state, so there
// is no lazy initialization and no retry.
type DocAIAdapter struct {
	client *docai.Client
	logger *slog.Logger
}

func NewDocAIAdapter(client *docai.Client, logger *slog.Logger) *DocAIAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &DocAIAdapter{client: client, logger: logger}
}

// Extract sends the document to the backend and returns its full text. Any
// failure, including an unconfigured backend, degrades silently to the
// fallback sentinel; the caller never sees an error.
func (a *DocAIAdapter) Extract(ctx context.Context, doc RawDocument) TextResult {
	start := time.Now()

	if a.client == nil {
		a.logger.Debug("extract.fallback", "reason", constants.ReasonBackendUnavailable)
		return a.fallback(constants.ReasonBackendUnavailable, start)
	}
	if !a.client.ProcessorConfigured() {
		a.logger.Debug("extract.fallback", "reason", constants.ReasonProcessorUnconfigured)
		return a.fallback(constants.ReasonProcessorUnconfigured, start)
	}

	text, err := a.client.Process(ctx, doc.Content, doc.MIMEType)
	if err != nil {
		a.logger.Warn("extract.backend_error", "error", err, "elapsed_ms", time.Since(start).Milliseconds())
		return a.fallback(constants.ReasonBackendError, start)
	}

	reason := constants.ReasonOK
	if text == "" {
		reason = constants.ReasonEmptyText
	}
	a.logger.Info("extract.ok", "text_len", len(text), "reason", reason, "elapsed_ms", time.Since(start).Milliseconds())
	return TextResult{Text: text, Reason: reason, Duration: time.Since(start)}
}

func (a *DocAIAdapter) fallback(reason constants.ReasonCode, start time.Time) TextResult {
	metrics.ExtractionFallbacks.WithLabelValues(string(reason)).Inc()
	return TextResult{Text: FallbackRawText, Reason: reason, Duration: time.Since(start)}
}
