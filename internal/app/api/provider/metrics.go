package provider

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

var (
	transcriptionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "transcribe_requests_total",
		Help: "Total number of transcription requests by provider and status.",
	}, []string{"provider", "status"})

	transcriptionSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "transcribe_duration_seconds",
		Help:    "Wall-clock time spent inside the recognition engine.",
		Buckets: prometheus.ExponentialBuckets(0.5, 2, 12),
	}, []string{"provider"})
)

// ObserveSuccess records a completed transcription and its engine latency.
func ObserveSuccess(providerName string, seconds float64) {
	transcriptionsTotal.WithLabelValues(providerName, "success").Inc()
	transcriptionSeconds.WithLabelValues(providerName).Observe(seconds)
}

// ObserveFailure records a failed transcription.
func ObserveFailure(providerName string) {
	transcriptionsTotal.WithLabelValues(providerName, "error").Inc()
}

// WriteMetricsReport writes every collected metric family to w in the
// Prometheus text exposition format. The process is short-lived, so the
// report replaces a scrape endpoint.
func WriteMetricsReport(w io.Writer) error {
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		return err
	}

	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, family := range families {
		if err := enc.Encode(family); err != nil {
			return err
		}
	}
	return nil
}
