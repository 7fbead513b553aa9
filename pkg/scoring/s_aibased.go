package scoring

import (
	"math"

	"github.com/creditscope/creditscope/pkg/profile"
)

// AIBasedStrategy is the production default scorer. The real model behind it
// has not been specified; this formula is a documented stand-in that blends
// the same five signal families as the rule tables (income, DTI, savings,
// employment stability, age) with smooth curves instead of brackets. Every
// weight is a field so the table can be replaced from config without code
// changes once the real model lands.
type AIBasedStrategy struct {
	IncomeMax     float64
	DebtRatioMax  float64
	SavingsMax    float64
	EmploymentMax float64
	AgeMax        float64
	DebtRatioZero float64 // DTI percentage at which the DTI component bottoms out
}

func (s *AIBasedStrategy) Name() string { return "ai" }

func (s *AIBasedStrategy) CalculateScore(p *profile.FinancialProfile) int {
	var score float64

	// Income: log-scaled so the curve flattens at high incomes.
	// log10(1+income)/5 reaches 1.0 at a monthly income of 100k.
	if p.MonthlyIncome > 0 {
		score += s.IncomeMax * math.Min(1, math.Log10(1+p.MonthlyIncome)/5)
	}

	// DTI: linear falloff from full points at 0% to none at DebtRatioZero.
	if zero := s.DebtRatioZero; zero > 0 {
		score += s.DebtRatioMax * math.Max(0, 1-p.DebtToIncomeRatio()/zero)
	}

	// Savings rate: full points at 2x the max (a 30% savings rate).
	score += math.Min(s.SavingsMax, p.SavingsRate()*s.SavingsMax/30)

	// Employment stability, scaled from its 0-100 domain.
	score += p.EmploymentStabilityScore() * s.EmploymentMax / 100

	// Age: invert the 0-100 risk score.
	score += (100 - p.AgeRiskScore()) * s.AgeMax / 100

	return clamp(score)
}
