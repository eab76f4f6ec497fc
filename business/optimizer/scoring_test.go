package optimizer

import (
	"math"
	"testing"

	"offerOptimizer/domain"
)

func TestScoreGrowthIncreasesWithConversionRate(t *testing.T) {
	cfg := DefaultConfig()
	copcar := 200.0
	price := 120.0

	prev := math.Inf(-1)
	for _, cr := range []float64{0.05, 0.1, 0.2, 0.4, 0.8, 1.0} {
		offer := domain.Offer{OfferName: "g", Price: 150, Volume: 10, ConversionRate: cr}
		score, _ := scoreGrowth(cfg, copcar, offer, 0.4, price)
		if score <= prev {
			t.Fatalf("growth score %v at conversion_rate %v not greater than %v", score, cr, prev)
		}
		prev = score
	}
}

func TestScoreRetentionTermNonDecreasingAsPriceDrops(t *testing.T) {
	// isolate the retention term by zeroing every other weight
	cfg := DefaultConfig()
	cfg.ProfitWeight = 0
	cfg.EfficiencyWeight = 0
	cfg.ProbabilityWeight = 0
	cfg.RetentionWeight = 1

	copcar := 200.0
	offer := domain.Offer{OfferName: "r", Price: 150, Volume: 10, ConversionRate: 0.2}

	prev := math.Inf(-1)
	for _, price := range []float64{180, 150, 120, 90, 60} {
		score, _ := scoreRetention(cfg, copcar, offer, 0.8, price)
		if score < prev {
			t.Fatalf("retention term decreased from %v to %v as price dropped to %v", prev, score, price)
		}
		prev = score
	}
}

func TestScoreProfitTerm(t *testing.T) {
	cfg := DefaultConfig()
	copcar := 200.0
	price := 140.0
	offer := domain.Offer{OfferName: "o", Price: 150, Volume: 10, ConversionRate: 0.25}

	want := (copcar - price) * offer.ConversionRate

	_, profitRet := scoreRetention(cfg, copcar, offer, 0.8, price)
	if math.Abs(profitRet-want) > 1e-12 {
		t.Errorf("retention profit term = %v, want %v", profitRet, want)
	}

	_, profitGrowth := scoreGrowth(cfg, copcar, offer, 0.8, price)
	if math.Abs(profitGrowth-want) > 1e-12 {
		t.Errorf("growth profit term = %v, want %v", profitGrowth, want)
	}
}

func TestScoreRetentionComposition(t *testing.T) {
	cfg := DefaultConfig()
	copcar := 200.0
	price := 150.0
	modelProbability := 0.8
	offer := domain.Offer{OfferName: "r", Price: 150, Volume: 10, ConversionRate: 0.15}

	dilution := 1 - price/copcar
	retentionScore := modelProbability * sigmoid(cfg.SigmoidK*dilution)
	want := cfg.ProfitWeight*(copcar-price)*offer.ConversionRate +
		cfg.RetentionWeight*retentionScore*copcar +
		cfg.EfficiencyWeight*offer.ConversionRate*dilution +
		cfg.ProbabilityWeight*modelProbability

	got, _ := scoreRetention(cfg, copcar, offer, modelProbability, price)
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("retention score = %v, want %v", got, want)
	}
}

func TestScoreFuncFor(t *testing.T) {
	cfg := DefaultConfig()
	offer := domain.Offer{OfferName: "o", Price: 100, Volume: 1, ConversionRate: 0.5}

	gotRet, _ := scoreFuncFor(domain.CategoryRetention)(cfg, 200, offer, 0.5, 120)
	wantRet, _ := scoreRetention(cfg, 200, offer, 0.5, 120)
	if gotRet != wantRet {
		t.Error("retention tag must dispatch to scoreRetention")
	}

	gotGrowth, _ := scoreFuncFor(domain.CategoryGrowth)(cfg, 200, offer, 0.5, 120)
	wantGrowth, _ := scoreGrowth(cfg, 200, offer, 0.5, 120)
	if gotGrowth != wantGrowth {
		t.Error("growth tag must dispatch to scoreGrowth")
	}
}
