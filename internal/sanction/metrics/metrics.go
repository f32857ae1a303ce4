package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the sanction workflow module.
type Metrics struct {
	// Command outcomes by operation and result code.
	CommandOutcome *prometheus.CounterVec

	// Open dispute gauge, decremented on resolution or expiry.
	DisputesOpen prometheus.Gauge

	// Dispute expirations fired by the scheduler.
	DisputesExpired prometheus.Counter

	// Ledger save latency, the one potentially slow step on every mutation.
	LedgerSaveLatency prometheus.Histogram
}

// New creates and registers all sanction workflow metrics.
func New() *Metrics {
	return &Metrics{
		CommandOutcome: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "warden_sanction_commands_total",
			Help: "Total sanction commands by operation and outcome code",
		}, []string{"operation", "outcome"}),

		DisputesOpen: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "warden_disputes_open",
			Help: "Number of dispute confirmations currently awaiting the victim",
		}),

		DisputesExpired: promauto.NewCounter(prometheus.CounterOpts{
			Name: "warden_disputes_expired_total",
			Help: "Dispute confirmations closed by the 24h deadline",
		}),

		LedgerSaveLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "warden_ledger_save_duration_seconds",
			Help:    "Duration of atomic ledger saves",
			Buckets: []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		}),
	}
}

// ObserveCommand records one command outcome.
func (m *Metrics) ObserveCommand(operation, outcome string) {
	if m != nil {
		m.CommandOutcome.WithLabelValues(operation, outcome).Inc()
	}
}

// ObserveLedgerSave records the duration of one ledger save.
func (m *Metrics) ObserveLedgerSave(d time.Duration) {
	if m != nil {
		m.LedgerSaveLatency.Observe(d.Seconds())
	}
}

// DisputeOpened bumps the open dispute gauge.
func (m *Metrics) DisputeOpened() {
	if m != nil {
		m.DisputesOpen.Inc()
	}
}

// DisputeClosed drops the open dispute gauge.
func (m *Metrics) DisputeClosed() {
	if m != nil {
		m.DisputesOpen.Dec()
	}
}

// DisputeExpired counts a deadline firing that actually closed a dispute.
func (m *Metrics) DisputeExpired() {
	if m != nil {
		m.DisputesExpired.Inc()
		m.DisputesOpen.Dec()
	}
}
