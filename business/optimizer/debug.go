package optimizer

import (
	"context"
	"fmt"

	"offerOptimizer/domain"
)

// EvaluateDebug runs the same walk as Evaluate but returns diagnostics for
// every (model, offer) pair instead of only the winner. Candidates appear in
// request order; the selected one is flagged.
func (s *Service) EvaluateDebug(ctx context.Context, req domain.OptimizationRequest) ([]domain.CandidateDebug, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if err := validateRequest(req); err != nil {
		return nil, err
	}

	out := make([]domain.CandidateDebug, 0)
	bestIdx := -1
	bestScore := 0.0

	for mi := range req.Models {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("context error: %w", err)
		}

		model := &req.Models[mi]
		for oi := range model.AvailableOffers {
			offer := &model.AvailableOffers[oi]

			entry := domain.CandidateDebug{
				ModelName:     model.ModelName,
				OfferName:     offer.OfferName,
				ModelCategory: model.ModelCategory,
			}

			lower, upper, ok := priceBounds(s.cfg, model.ModelCategory, req.Copcar)
			if !ok {
				infeasible := &InfeasibleOfferError{
					ModelName: model.ModelName,
					OfferName: offer.OfferName,
					Copcar:    req.Copcar,
				}
				entry.SkipReason = infeasible.Error()
				out = append(out, entry)
				continue
			}

			price, score, err := optimizePrice(s.cfg, req.Copcar, *offer, model.ModelProbability, model.ModelCategory)
			if err != nil {
				entry.SkipReason = err.Error()
				out = append(out, entry)
				continue
			}

			entry.Feasible = true
			entry.LowerBound = lower
			entry.UpperBound = upper
			entry.OptimizedPrice = price
			entry.Score = score
			out = append(out, entry)

			if bestIdx < 0 || score > bestScore {
				bestIdx = len(out) - 1
				bestScore = score
			}
		}
	}

	if bestIdx >= 0 {
		out[bestIdx].Selected = true
	}
	return out, nil
}
