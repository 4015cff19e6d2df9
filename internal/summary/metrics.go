package summary

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/seenimoa/finsight/pkg/models"
)

// Dispatch outcomes recorded in the result label.
const (
	ResultOK      = "ok"
	ResultAbsent  = "absent"
	ResultUnknown = "unknown"
)

// Metrics holds the Prometheus collectors of the dispatcher.
type Metrics struct {
	Summaries        *prometheus.CounterVec
	AnalyzerDuration *prometheus.HistogramVec
}

// NewMetrics creates the dispatcher metrics and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Summaries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finsight_summaries_total",
				Help: "Total number of summary requests by data type and result",
			},
			[]string{"data_type", "result"},
		),
		AnalyzerDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "finsight_analyzer_duration_seconds",
				Help:    "Duration of analyzer runs in seconds",
				Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
			},
			[]string{"data_type"},
		),
	}
	if reg != nil {
		reg.MustRegister(m.Summaries, m.AnalyzerDuration)
	}
	return m
}

// observe records one dispatch. It is a no-op on a nil receiver.
func (m *Metrics) observe(tag, result string, elapsed time.Duration) {
	if m == nil {
		return
	}
	label := tag
	if _, ok := models.ParseDataType(tag); !ok {
		label = ResultUnknown
	}
	m.Summaries.WithLabelValues(label, result).Inc()
	if result != ResultUnknown {
		m.AnalyzerDuration.WithLabelValues(label).Observe(elapsed.Seconds())
	}
}
