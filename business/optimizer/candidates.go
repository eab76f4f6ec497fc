package optimizer

import (
	"context"
	"errors"
	"fmt"

	"offerOptimizer/domain"
	"offerOptimizer/pkg/logger"
)

// candidate is one (model, offer, optimized price) combination. It lives only
// for the duration of one request's evaluation.
type candidate struct {
	modelIndex int
	offerIndex int
	price      float64
	score      float64
}

// selectCandidate walks every (model, offer) pair in request order, optimizes
// each, and keeps the running best. Infeasible offers are skipped with a
// debug log; strict score ties keep the first-encountered candidate so the
// outcome is deterministic. The context is re-checked between models so an
// external deadline fails the request atomically instead of returning a
// winner computed from part of the offer set.
func (s *Service) selectCandidate(ctx context.Context, req domain.OptimizationRequest) (candidate, error) {
	tid := TraceIDFromContext(ctx)

	var best candidate
	found := false

	for mi := range req.Models {
		if err := ctx.Err(); err != nil {
			return candidate{}, fmt.Errorf("context error: %w", err)
		}

		model := &req.Models[mi]
		for oi := range model.AvailableOffers {
			offer := &model.AvailableOffers[oi]

			price, score, err := optimizePrice(s.cfg, req.Copcar, *offer, model.ModelProbability, model.ModelCategory)
			if err != nil {
				var infeasible *InfeasibleOfferError
				if errors.As(err, &infeasible) {
					infeasible.ModelName = model.ModelName
					InfeasibleOffersTotal.WithLabelValues(string(model.ModelCategory)).Inc()
					logger.Debug("offer skipped",
						"trace_id", tid,
						"customer_id", req.CustomerID,
						"model", model.ModelName,
						"offer", offer.OfferName,
						"reason", infeasible.Error(),
					)
					continue
				}
				return candidate{}, err
			}

			if !found || score > best.score {
				best = candidate{modelIndex: mi, offerIndex: oi, price: price, score: score}
				found = true
			}
		}
	}

	if !found {
		return candidate{}, &NoFeasibleCandidateError{CustomerID: req.CustomerID}
	}
	return best, nil
}
