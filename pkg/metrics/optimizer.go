package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the optimize HTTP handler
	OptimizeLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "optimize_request_latency_seconds",
		Help:    "Latency of the optimize handler",
		Buckets: prometheus.DefBuckets,
	})

	// Total number of optimize requests served
	OptimizeRequests = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "optimize_requests_total",
		Help: "Total number of optimize requests",
	})
)

func Init() {
	prometheus.MustRegister(
		OptimizeLatency,
		OptimizeRequests,
	)
}
