package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	VerificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "receipt_verifications_total",
			Help: "Total number of receipt verifications by decision and reason",
		},
		[]string{"decision", "reason"},
	)

	ExtractionFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "receipt_extraction_fallbacks_total",
			Help: "Total number of extractions that took the degraded fallback path",
		},
		[]string{"reason"},
	)

	VerificationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "receipt_verification_duration_seconds",
			Help: "Duration of the full verification pipeline in seconds",
		},
	)

	MatchScore = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "receipt_match_score",
			Help:    "Distribution of computed match scores",
			Buckets: prometheus.LinearBuckets(0, 0.1, 11),
		},
	)
)
