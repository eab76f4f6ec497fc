package optimizer

// Config carries the fixed scoring weights, sigmoid shaping constant and
// category bound factors. It is threaded into scoring and optimization as a
// value, never read from global state, so tests can run with their own copy.
type Config struct {
	// objective weights (w1..w4)
	ProfitWeight      float64
	RetentionWeight   float64
	EfficiencyWeight  float64
	ProbabilityWeight float64

	// sigmoid steepness for the retention term
	SigmoidK float64

	// feasible price interval per category, as fractions of copcar
	RetentionMinFactor float64
	RetentionMaxFactor float64
	GrowthMinFactor    float64
	GrowthMaxFactor    float64

	// dilution-rate band for retention offers; intersected with the
	// factor interval above in price space
	DilutionMin float64
	DilutionMax float64

	// search convergence, as a fraction of the interval width
	Tolerance float64
}

const (
	defaultProfitWeight      = 1.0
	defaultRetentionWeight   = 1.5
	defaultEfficiencyWeight  = 0.3
	defaultProbabilityWeight = 0.5

	defaultSigmoidK = 5.0

	defaultRetentionMinFactor = 0.3
	defaultRetentionMaxFactor = 0.9
	defaultGrowthMinFactor    = 0.5
	defaultGrowthMaxFactor    = 0.95

	defaultDilutionMin = 0.10
	defaultDilutionMax = 0.70

	defaultTolerance = 1e-4
)

func DefaultConfig() Config {
	return Config{
		ProfitWeight:      defaultProfitWeight,
		RetentionWeight:   defaultRetentionWeight,
		EfficiencyWeight:  defaultEfficiencyWeight,
		ProbabilityWeight: defaultProbabilityWeight,

		SigmoidK: defaultSigmoidK,

		RetentionMinFactor: defaultRetentionMinFactor,
		RetentionMaxFactor: defaultRetentionMaxFactor,
		GrowthMinFactor:    defaultGrowthMinFactor,
		GrowthMaxFactor:    defaultGrowthMaxFactor,

		DilutionMin: defaultDilutionMin,
		DilutionMax: defaultDilutionMax,

		Tolerance: defaultTolerance,
	}
}
