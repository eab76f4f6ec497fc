package optimizer

import "offerOptimizer/domain"

// scoreFunc evaluates one (offer, trial price) pair and returns the weighted
// score plus the raw profit term. One implementation exists per category tag.
type scoreFunc func(cfg Config, copcar float64, offer domain.Offer, modelProbability, price float64) (float64, float64)

// scoreRetention values a retention offer at the trial price. The conversion
// rate and volume stay fixed; only the price varies during optimization.
// Requires price < copcar so the dilution rate stays in (0, 1).
func scoreRetention(cfg Config, copcar float64, offer domain.Offer, modelProbability, price float64) (float64, float64) {
	dilutionRate := 1 - price/copcar

	// model probability is retention likelihood for this category
	churnProbability := 1 - modelProbability
	retentionScore := (1 - churnProbability) * sigmoid(cfg.SigmoidK*dilutionRate)

	profitTerm := (copcar - price) * offer.ConversionRate
	retentionTerm := retentionScore * copcar
	efficiencyTerm := offer.ConversionRate * dilutionRate

	score := cfg.ProfitWeight*profitTerm +
		cfg.RetentionWeight*retentionTerm +
		cfg.EfficiencyWeight*efficiencyTerm +
		cfg.ProbabilityWeight*modelProbability

	return score, profitTerm
}

// scoreGrowth values a growth offer at the trial price. No retention term;
// the efficiency term rewards pricing further below copcar.
func scoreGrowth(cfg Config, copcar float64, offer domain.Offer, modelProbability, price float64) (float64, float64) {
	profitTerm := (copcar - price) * offer.ConversionRate
	efficiencyTerm := offer.ConversionRate * copcar / price

	score := cfg.ProfitWeight*profitTerm +
		cfg.EfficiencyWeight*efficiencyTerm +
		cfg.ProbabilityWeight*modelProbability

	return score, profitTerm
}

// scoreFuncFor dispatches once on the category tag so the optimization loop
// never inspects the category per evaluation.
func scoreFuncFor(category domain.ModelCategory) scoreFunc {
	if category == domain.CategoryRetention {
		return scoreRetention
	}
	return scoreGrowth
}
