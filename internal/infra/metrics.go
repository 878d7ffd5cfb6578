package infra

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus instruments for the donation pipeline.
type Metrics struct {
	DonationsAccepted prometheus.Counter
	DonationsRejected *prometheus.CounterVec
	DonationAmount    prometheus.Counter
	UpstreamErrors    *prometheus.CounterVec
}

// NewMetrics creates and registers all Prometheus metrics.
func NewMetrics() *Metrics {
	return newMetrics(prometheus.DefaultRegisterer)
}

// NewMetricsWithRegisterer registers against a caller-supplied registry,
// which keeps tests independent of global state.
func NewMetricsWithRegisterer(reg prometheus.Registerer) *Metrics {
	return newMetrics(reg)
}

func newMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		DonationsAccepted: factory.NewCounter(prometheus.CounterOpts{
			Name: "gopgang_donations_accepted_total",
			Help: "Donation events accepted into the ledger",
		}),
		DonationsRejected: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "gopgang_donations_rejected_total",
			Help: "Donation events rejected at the ingest boundary",
		}, []string{"reason"}),
		DonationAmount: factory.NewCounter(prometheus.CounterOpts{
			Name: "gopgang_donation_amount_total",
			Help: "Sum of accepted donation amounts in Robux",
		}),
		UpstreamErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "gopgang_roblox_upstream_errors_total",
			Help: "Non-success responses from the Roblox platform API",
		}, []string{"lookup"}),
	}
}
