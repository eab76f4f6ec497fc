package domain

// ModelCategory tags which scoring formula applies to a model's offers.
type ModelCategory string

const (
	CategoryRetention ModelCategory = "retention"
	CategoryGrowth    ModelCategory = "growth"
)

// Offer is one candidate price point supplied by a predictive model.
// Immutable once received; only the trial price varies during optimization.
type Offer struct {
	OfferName      string  `json:"offer_name" validate:"required"`
	Price          float64 `json:"price" validate:"required,gt=0"`
	Volume         float64 `json:"volume" validate:"gte=0"`
	ConversionRate float64 `json:"conversion_rate" validate:"required,gt=0,lte=1"`
}

// Model groups the offers of one predictive model together with the
// model's confidence and category.
type Model struct {
	ModelName        string        `json:"model_name" validate:"required"`
	ModelProbability float64       `json:"model_probability" validate:"gte=0,lte=1"`
	ModelCategory    ModelCategory `json:"model_category" validate:"required,oneof=retention growth"`
	AvailableOffers  []Offer       `json:"available_offers" validate:"required,min=1,dive"`
}

type OptimizationRequest struct {
	CustomerID string  `json:"customer_id" validate:"required"`
	Copcar     float64 `json:"copcar" validate:"required,gt=0"`
	Models     []Model `json:"models" validate:"required,min=1,dive"`
}

// OptimizationResult is the single winning (model, offer, price) combination.
// OfferPrice is the optimized price; ActualOfferPrice is the price the offer
// came in with, and ExpectedProfit is always derived from the latter.
type OptimizationResult struct {
	CustomerID       string  `json:"customer_id"`
	Copcar           float64 `json:"copcar"`
	OptProfit        float64 `json:"opt_profit"`
	ExpectedProfit   float64 `json:"expected_profit"`
	ModelName        string  `json:"model_name"`
	OfferName        string  `json:"offer_name"`
	OfferPrice       float64 `json:"offer_price"`
	ActualOfferPrice float64 `json:"actual_offer_price"`
	OfferVolume      float64 `json:"offer_volume"`
}

// CandidateDebug exposes per-candidate diagnostics on the debug endpoint:
// every evaluated (model, offer) pair with its search interval and outcome.
type CandidateDebug struct {
	ModelName      string        `json:"model_name"`
	OfferName      string        `json:"offer_name"`
	ModelCategory  ModelCategory `json:"model_category"`
	LowerBound     float64       `json:"lower_bound"`
	UpperBound     float64       `json:"upper_bound"`
	OptimizedPrice float64       `json:"optimized_price"`
	Score          float64       `json:"score"`
	Feasible       bool          `json:"feasible"`
	SkipReason     string        `json:"skip_reason,omitempty"`
	Selected       bool          `json:"selected"`
}
