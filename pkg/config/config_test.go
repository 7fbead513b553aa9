package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/creditscope/creditscope/pkg/config"
	"github.com/creditscope/creditscope/pkg/profile"
	"github.com/creditscope/creditscope/pkg/scoring"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Scoring.DefaultStrategy != "ai" {
		t.Errorf("DefaultStrategy = %s, want ai", cfg.Scoring.DefaultStrategy)
	}
	if cfg.Cache.Backend != "memory" {
		t.Errorf("Cache.Backend = %s, want memory", cfg.Cache.Backend)
	}
}

func TestLoadParsesOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := []byte(`
scoring:
  default_strategy: conservative
  weights:
    ai.income_max: 20
    employment_factor: 0.2
service:
  port: "9090"
cache:
  backend: redis
  redis_addr: localhost:6379
archive:
  backend: s3
  bucket: creditscope-reports
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Scoring.DefaultStrategy != "conservative" {
		t.Errorf("DefaultStrategy = %s, want conservative", cfg.Scoring.DefaultStrategy)
	}
	if cfg.Service.Port != "9090" {
		t.Errorf("Port = %s, want 9090", cfg.Service.Port)
	}
	if cfg.Archive.Bucket != "creditscope-reports" {
		t.Errorf("Bucket = %s, want creditscope-reports", cfg.Archive.Bucket)
	}

	w := cfg.ScoringWeights()
	if w.AIIncomeMax != 20 {
		t.Errorf("AIIncomeMax = %f, want 20", w.AIIncomeMax)
	}
	if w.EmploymentFactor != 0.2 {
		t.Errorf("EmploymentFactor = %f, want 0.2", w.EmploymentFactor)
	}
	// Untouched weights keep their defaults.
	if w.AIDebtRatioMax != scoring.Defaults().AIDebtRatioMax {
		t.Errorf("AIDebtRatioMax = %f, want default", w.AIDebtRatioMax)
	}
}

func TestWeightOverridesChangeScores(t *testing.T) {
	p := profile.FinancialProfile{
		MonthlyIncome:       60000,
		MonthlyExpenses:     20000,
		ExistingDebts:       60000,
		Age:                 40,
		EmploymentType:      profile.EmploymentPermanent,
		EmploymentYears:     10,
		RequestedLoanAmount: 600000,
	}

	base := config.DefaultConfig()
	tuned := config.DefaultConfig()
	tuned.Scoring.Weights = map[string]float64{"ai.income_max": 0}

	before := base.DefaultStrategy().CalculateScore(&p)
	after := tuned.DefaultStrategy().CalculateScore(&p)
	if after >= before {
		t.Errorf("zeroing the income weight should lower the score: before %d, after %d", before, after)
	}
}

func TestDefaultStrategyFallback(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Scoring.DefaultStrategy = "does-not-exist"
	if got := cfg.DefaultStrategy().Name(); got != "standard" {
		t.Errorf("unknown strategy name resolved to %s, want standard", got)
	}
}

func TestFindConfigFile(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(filepath.Join(root, ".creditscope"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(root, ".creditscope", "config.yaml")
	if err := os.WriteFile(want, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	if got := config.FindConfigFile(nested); got != want {
		t.Errorf("FindConfigFile() = %q, want %q", got, want)
	}
}
