// Package config handles loading and managing Creditscope configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/creditscope/creditscope/pkg/scoring"
)

// Config is the top-level configuration for Creditscope.
type Config struct {
	Scoring ScoringConfig `yaml:"scoring"`
	Service ServiceConfig `yaml:"service"`
	Cache   CacheConfig   `yaml:"cache"`
	Archive ArchiveConfig `yaml:"archive"`
}

// ScoringConfig controls scoring behavior.
type ScoringConfig struct {
	// DefaultStrategy names the strategy used when a request doesn't pick
	// one. Unknown names fall back to "standard" at lookup time.
	DefaultStrategy string `yaml:"default_strategy"`
	// Weights overrides individual scalar weights by key, e.g.
	// "ai.income_max": 25. Unknown keys are ignored.
	Weights map[string]float64 `yaml:"weights"`
}

// ServiceConfig controls the hosted decision service.
type ServiceConfig struct {
	Port        string `yaml:"port"`
	DatabaseURL string `yaml:"database_url"`
	APIKey      string `yaml:"api_key"`
	// RateLimit is the allowed requests per client per minute; 0 disables.
	RateLimit int `yaml:"rate_limit"`
}

// CacheConfig controls the decision cache.
type CacheConfig struct {
	// Backend is "memory" or "redis".
	Backend   string `yaml:"backend"`
	RedisAddr string `yaml:"redis_addr"`
	// Size is the max entries for the in-memory backend.
	Size int `yaml:"size"`
}

// ArchiveConfig controls decision report archival.
type ArchiveConfig struct {
	// Backend is "local", "s3", or "gcs".
	Backend   string `yaml:"backend"`
	LocalPath string `yaml:"local_path"`
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
	Endpoint  string `yaml:"endpoint"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Scoring: ScoringConfig{
			DefaultStrategy: "ai",
			Weights:         map[string]float64{},
		},
		Service: ServiceConfig{
			Port:      "8080",
			RateLimit: 60,
		},
		Cache: CacheConfig{
			Backend: "memory",
			Size:    128,
		},
		Archive: ArchiveConfig{
			Backend:   "local",
			LocalPath: "/tmp/creditscope-data",
		},
	}
}

// Load reads a config file from the given path.
// If the file does not exist, it returns the default config.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// FindConfigFile looks for .creditscope/config.yaml in the given directory
// and its parents, returning the path if found, or "" if not.
func FindConfigFile(dir string) string {
	for {
		candidate := filepath.Join(dir, ".creditscope", "config.yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}

// ScoringWeights materializes the scoring weights with any configured
// overrides applied on top of the defaults.
func (c *Config) ScoringWeights() scoring.DefaultWeights {
	w := scoring.Defaults()
	for key, value := range c.Scoring.Weights {
		switch key {
		case "employment_factor":
			w.EmploymentFactor = value
		case "aggressive.base":
			w.AggressiveBase = value
		case "aggressive.employed_bonus":
			w.AggressiveEmployedBonus = value
		case "aggressive.self_employed_bonus":
			w.AggressiveSelfEmployedBonus = value
		case "aggressive.tenure_cap":
			w.AggressiveTenureCap = value
		case "ai.income_max":
			w.AIIncomeMax = value
		case "ai.debt_ratio_max":
			w.AIDebtRatioMax = value
		case "ai.savings_max":
			w.AISavingsMax = value
		case "ai.employment_max":
			w.AIEmploymentMax = value
		case "ai.age_max":
			w.AIAgeMax = value
		case "ai.debt_ratio_zero":
			w.AIDebtRatioZero = value
		}
	}
	return w
}

// DefaultStrategy returns the configured default strategy with the
// configured weights applied.
func (c *Config) DefaultStrategy() scoring.Strategy {
	return StrategyFromWeights(c.Scoring.DefaultStrategy, c.ScoringWeights())
}

// StrategyFromWeights builds a named strategy from an explicit weight set.
// Unknown names fall back to the standard strategy, matching ByName.
func StrategyFromWeights(name string, w scoring.DefaultWeights) scoring.Strategy {
	switch name {
	case "conservative":
		return &scoring.ConservativeStrategy{EmploymentFactor: w.EmploymentFactor}
	case "aggressive":
		return &scoring.AggressiveStrategy{
			Base:              w.AggressiveBase,
			EmployedBonus:     w.AggressiveEmployedBonus,
			SelfEmployedBonus: w.AggressiveSelfEmployedBonus,
			TenureCap:         w.AggressiveTenureCap,
		}
	case "ai", "ai-based":
		return &scoring.AIBasedStrategy{
			IncomeMax:     w.AIIncomeMax,
			DebtRatioMax:  w.AIDebtRatioMax,
			SavingsMax:    w.AISavingsMax,
			EmploymentMax: w.AIEmploymentMax,
			AgeMax:        w.AIAgeMax,
			DebtRatioZero: w.AIDebtRatioZero,
		}
	default:
		return &scoring.StandardStrategy{EmploymentFactor: w.EmploymentFactor}
	}
}
