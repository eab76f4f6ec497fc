package optimizer

import "offerOptimizer/domain"

// validateRequest enforces the numeric invariants before any optimization
// runs. The wire layer does field-level validation already; this re-checks
// every invariant the scoring formulas depend on so the engine stays safe
// when called directly.
func validateRequest(req domain.OptimizationRequest) error {
	if req.Copcar <= 0 {
		return validationErrorf("copcar must be positive, got %v", req.Copcar)
	}
	if len(req.Models) == 0 {
		return validationErrorf("at least one model is required")
	}

	for _, model := range req.Models {
		switch model.ModelCategory {
		case domain.CategoryRetention, domain.CategoryGrowth:
		default:
			return validationErrorf("unknown model_category %q for model %q",
				model.ModelCategory, model.ModelName)
		}
		if model.ModelProbability < 0 || model.ModelProbability > 1 {
			return validationErrorf("model_probability must be in [0,1] for model %q, got %v",
				model.ModelName, model.ModelProbability)
		}
		if len(model.AvailableOffers) == 0 {
			return validationErrorf("model %q has no offers", model.ModelName)
		}

		for _, offer := range model.AvailableOffers {
			if offer.Price <= 0 {
				return validationErrorf("offer %q price must be positive, got %v",
					offer.OfferName, offer.Price)
			}
			if offer.Volume < 0 {
				return validationErrorf("offer %q volume cannot be negative, got %v",
					offer.OfferName, offer.Volume)
			}
			if offer.ConversionRate <= 0 || offer.ConversionRate > 1 {
				return validationErrorf("offer %q conversion_rate must be in (0,1], got %v",
					offer.OfferName, offer.ConversionRate)
			}
			if offer.Price >= req.Copcar {
				return validationErrorf("offer %q price %v must be below copcar %v",
					offer.OfferName, offer.Price, req.Copcar)
			}
		}
	}

	return nil
}
