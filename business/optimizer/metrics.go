package optimizer

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	OptimizationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "offer_optimizations_total",
			Help: "Count of optimization evaluations by outcome.",
		},
		[]string{"outcome"},
	)

	InfeasibleOffersTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "offer_optimizer_infeasible_offers_total",
			Help: "Count of offers skipped because their category bounds admit no price.",
		},
		[]string{"category"},
	)
)

const (
	outcomeOptimized           = "optimized"
	outcomeValidationError     = "validation_error"
	outcomeNoFeasibleCandidate = "no_feasible_candidate"
	outcomeError               = "error"
)

func init() {
	prometheus.MustRegister(OptimizationsTotal, InfeasibleOffersTotal)
}
