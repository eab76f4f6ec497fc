package optimizer

import (
	"math"

	"offerOptimizer/domain"
)

// keeps the upper bound strictly below copcar even when factors drift past 1
const belowCopcarFactor = 1.0 - 1e-9

// priceBounds derives the closed feasible price interval for a category at
// the given copcar. Retention intervals are the factor interval intersected
// with the dilution band mapped into price space; both categories are clipped
// strictly below copcar. ok is false when the interval is empty.
func priceBounds(cfg Config, category domain.ModelCategory, copcar float64) (lower, upper float64, ok bool) {
	switch category {
	case domain.CategoryRetention:
		lower = cfg.RetentionMinFactor * copcar
		upper = cfg.RetentionMaxFactor * copcar

		// dilution d = 1 - price/copcar, so d in [min,max] means
		// price in [copcar*(1-max), copcar*(1-min)]
		lower = math.Max(lower, copcar*(1-cfg.DilutionMax))
		upper = math.Min(upper, copcar*(1-cfg.DilutionMin))
	case domain.CategoryGrowth:
		lower = cfg.GrowthMinFactor * copcar
		upper = cfg.GrowthMaxFactor * copcar
	default:
		return 0, 0, false
	}

	upper = math.Min(upper, copcar*belowCopcarFactor)

	if lower <= 0 || lower > upper {
		return 0, 0, false
	}
	return lower, upper, true
}
