package optimizer

import "offerOptimizer/domain"

// optimizePrice finds the feasible price maximizing the category score for
// one offer. Returns InfeasibleOfferError when the category bounds admit no
// price at this copcar.
func optimizePrice(
	cfg Config,
	copcar float64,
	offer domain.Offer,
	modelProbability float64,
	category domain.ModelCategory,
) (bestPrice, bestScore float64, err error) {

	lower, upper, ok := priceBounds(cfg, category, copcar)
	if !ok {
		return 0, 0, &InfeasibleOfferError{OfferName: offer.OfferName, Copcar: copcar}
	}

	score := scoreFuncFor(category)
	objective := func(price float64) float64 {
		v, _ := score(cfg, copcar, offer, modelProbability, price)
		return v
	}

	tol := cfg.Tolerance * (upper - lower)
	bestPrice, bestScore = maximize(objective, lower, upper, tol)
	return bestPrice, bestScore, nil
}
