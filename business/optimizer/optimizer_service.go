package optimizer

import (
	"context"
	"errors"
	"fmt"

	"offerOptimizer/domain"
	"offerOptimizer/pkg/logger"
)

// Service is the scoring-and-constrained-price-optimization engine. It holds
// only immutable configuration, so one instance serves any number of
// concurrent requests.
type Service struct {
	cfg Config
}

func NewService(cfg Config) *Service {
	return &Service{cfg: cfg}
}

// Evaluate picks the single best (model, offer, price) combination for the
// request. Validation failures surface before any scoring; infeasible offers
// are skipped; the request fails only when nothing feasible remains.
func (s *Service) Evaluate(ctx context.Context, req domain.OptimizationRequest) (domain.OptimizationResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.OptimizationResult{}, fmt.Errorf("context error: %w", err)
	}

	if err := validateRequest(req); err != nil {
		OptimizationsTotal.WithLabelValues(outcomeValidationError).Inc()
		return domain.OptimizationResult{}, err
	}

	best, err := s.selectCandidate(ctx, req)
	if err != nil {
		var noCandidate *NoFeasibleCandidateError
		if errors.As(err, &noCandidate) {
			OptimizationsTotal.WithLabelValues(outcomeNoFeasibleCandidate).Inc()
		} else {
			OptimizationsTotal.WithLabelValues(outcomeError).Inc()
		}
		return domain.OptimizationResult{}, err
	}

	result := assembleResult(req, best)

	tid := TraceIDFromContext(ctx)
	logger.Debug("optimization complete",
		"trace_id", tid,
		"customer_id", req.CustomerID,
		"model", result.ModelName,
		"offer", result.OfferName,
		"offer_price", result.OfferPrice,
		"opt_profit", result.OptProfit,
	)

	OptimizationsTotal.WithLabelValues(outcomeOptimized).Inc()
	return result, nil
}

// assembleResult maps the winning candidate plus request-level fields into
// the output record. ExpectedProfit intentionally uses the offer's original
// price, not the optimized one.
func assembleResult(req domain.OptimizationRequest, c candidate) domain.OptimizationResult {
	model := req.Models[c.modelIndex]
	offer := model.AvailableOffers[c.offerIndex]

	return domain.OptimizationResult{
		CustomerID:       req.CustomerID,
		Copcar:           req.Copcar,
		OptProfit:        c.score,
		ExpectedProfit:   req.Copcar - offer.Price,
		ModelName:        model.ModelName,
		OfferName:        offer.OfferName,
		OfferPrice:       c.price,
		ActualOfferPrice: offer.Price,
		OfferVolume:      offer.Volume,
	}
}
