// Package observability holds the Prometheus metrics of the delivery
// engine. Counters are registered with promauto at package load; the HTTP
// layer exposes them on /metrics.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	DeliveriesCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "mtaani",
		Name:      "deliveries_created_total",
		Help:      "Total number of deliveries created",
	})

	AcceptsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "mtaani",
		Name:      "accepts_total",
		Help:      "Total number of successful delivery accepts",
	})

	AcceptConflictsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "mtaani",
		Name:      "accept_conflicts_total",
		Help:      "Accept attempts that lost the race to another rider",
	})

	CandidateSearchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "mtaani",
		Name:      "candidate_search_duration_seconds",
		Help:      "Latency of the available-deliveries search",
		Buckets:   prometheus.DefBuckets,
	})
)
