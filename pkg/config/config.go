package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Server    ServerConfig
	Optimizer OptimizerConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
}

type ServerConfig struct {
	Port           string
	RequestTimeout time.Duration
}

// OptimizerConfig holds the scoring weights and shaping constants. Bound
// factors are fixed business policy and stay in the optimizer package
// defaults; only the tunables below are exposed through the environment.
type OptimizerConfig struct {
	ProfitWeight      float64
	RetentionWeight   float64
	EfficiencyWeight  float64
	ProbabilityWeight float64
	SigmoidK          float64
	Tolerance         float64
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Offer Optimizer API"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			RequestTimeout: getEnvDuration("REQUEST_TIMEOUT", 10*time.Second),
		},
		Optimizer: OptimizerConfig{
			ProfitWeight:      getEnvFloat("OPT_PROFIT_WEIGHT", 1.0),
			RetentionWeight:   getEnvFloat("OPT_RETENTION_WEIGHT", 1.5),
			EfficiencyWeight:  getEnvFloat("OPT_EFFICIENCY_WEIGHT", 0.3),
			ProbabilityWeight: getEnvFloat("OPT_PROBABILITY_WEIGHT", 0.5),
			SigmoidK:          getEnvFloat("OPT_SIGMOID_K", 5.0),
			Tolerance:         getEnvFloat("OPT_TOLERANCE", 1e-4),
		},
	}

	if cfg.Optimizer.SigmoidK <= 0 {
		return nil, fmt.Errorf("OPT_SIGMOID_K must be positive, got %v", cfg.Optimizer.SigmoidK)
	}
	if cfg.Optimizer.Tolerance <= 0 {
		return nil, fmt.Errorf("OPT_TOLERANCE must be positive, got %v", cfg.Optimizer.Tolerance)
	}
	for name, w := range map[string]float64{
		"OPT_PROFIT_WEIGHT":      cfg.Optimizer.ProfitWeight,
		"OPT_RETENTION_WEIGHT":   cfg.Optimizer.RetentionWeight,
		"OPT_EFFICIENCY_WEIGHT":  cfg.Optimizer.EfficiencyWeight,
		"OPT_PROBABILITY_WEIGHT": cfg.Optimizer.ProbabilityWeight,
	} {
		if w < 0 {
			return nil, fmt.Errorf("%s cannot be negative, got %v", name, w)
		}
	}
	if cfg.Server.RequestTimeout <= 0 {
		return nil, fmt.Errorf("REQUEST_TIMEOUT must be positive, got %v", cfg.Server.RequestTimeout)
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return defaultVal
	}
	return f
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return defaultVal
	}
	return d
}
