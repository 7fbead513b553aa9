package scoring

import (
	"github.com/creditscope/creditscope/pkg/profile"
)

// Calculator orchestrates scoring: validate, run the strategy, rescale to
// the credit domain, classify, and break the score down into factors.
// It holds no mutable state; the strategy is fixed at construction and a
// different one can be supplied per call via ScoreWith.
type Calculator struct {
	strategy Strategy
}

// NewCalculator creates a Calculator. A nil strategy selects the AI-based
// production default.
func NewCalculator(strategy Strategy) *Calculator {
	if strategy == nil {
		strategy = NewAIBased()
	}
	return &Calculator{strategy: strategy}
}

// Score evaluates the profile with the calculator's strategy.
func (c *Calculator) Score(p *profile.FinancialProfile) ScoreResult {
	return c.ScoreWith(c.strategy, p)
}

// ScoreWith evaluates the profile with an explicit strategy. An invalid
// profile is not an error: the result carries the validation messages and
// the sentinel floor score.
func (c *Calculator) ScoreWith(s Strategy, p *profile.FinancialProfile) ScoreResult {
	if s == nil {
		s = c.strategy
	}

	if v := p.Validate(); !v.IsValid {
		return ScoreResult{
			Success:  false,
			Strategy: s.Name(),
			Score:    ScoreFloor,
			Errors:   v.Errors,
		}
	}

	raw := s.CalculateScore(p)
	score := Rescale(raw)

	return ScoreResult{
		Success:             true,
		Strategy:            s.Name(),
		RawScore:            raw,
		Score:               score,
		RiskLevel:           RiskLevelFromScore(score),
		Rating:              RatingFromScore(score),
		ApprovalProbability: ApprovalProbability(score),
		Breakdown:           buildBreakdown(p),
	}
}

// CompareStrategies scores the profile with every default strategy,
// keyed by strategy name.
func CompareStrategies(p *profile.FinancialProfile) map[string]ScoreResult {
	c := NewCalculator(nil)
	results := make(map[string]ScoreResult)
	for _, s := range DefaultStrategies() {
		results[s.Name()] = c.ScoreWith(s, p)
	}
	return results
}

// buildBreakdown assesses the five contributing factor families in a fixed
// order so consumers can render them deterministically.
func buildBreakdown(p *profile.FinancialProfile) []FactorAssessment {
	return []FactorAssessment{
		{
			Key:        "debt_to_income",
			Name:       "Debt-to-income ratio",
			Value:      p.DebtToIncomeRatio(),
			Assessment: assessLowerBetter(p.DebtToIncomeRatio(), 30, 45),
		},
		{
			Key:        "monthly_income",
			Name:       "Monthly income",
			Value:      p.MonthlyIncome,
			Assessment: assessHigherBetter(p.MonthlyIncome, 5000, 2500),
		},
		{
			Key:        "employment_stability",
			Name:       "Employment stability",
			Value:      p.EmploymentStabilityScore(),
			Assessment: assessHigherBetter(p.EmploymentStabilityScore(), 70, 50),
		},
		{
			Key:        "savings_rate",
			Name:       "Savings rate",
			Value:      p.SavingsRate(),
			Assessment: assessHigherBetter(p.SavingsRate(), 20, 10),
		},
		{
			Key:        "age",
			Name:       "Age",
			Value:      float64(p.Age),
			Assessment: assessAgeBand(p.Age),
		},
	}
}

// assessLowerBetter tags a metric where smaller values are better, using
// ascending thresholds.
func assessLowerBetter(value, positiveBelow, neutralBelow float64) Assessment {
	switch {
	case value < positiveBelow:
		return AssessmentPositive
	case value < neutralBelow:
		return AssessmentNeutral
	default:
		return AssessmentNegative
	}
}

// assessHigherBetter tags a metric where larger values are better, using
// descending thresholds.
func assessHigherBetter(value, positiveAtLeast, neutralAtLeast float64) Assessment {
	switch {
	case value >= positiveAtLeast:
		return AssessmentPositive
	case value >= neutralAtLeast:
		return AssessmentNeutral
	default:
		return AssessmentNegative
	}
}

// assessAgeBand applies the dedicated age band rule: prime borrowing years
// are positive, the shoulders neutral, everything else negative.
func assessAgeBand(age int) Assessment {
	switch {
	case age >= 30 && age <= 50:
		return AssessmentPositive
	case (age >= 25 && age <= 29) || (age >= 51 && age <= 60):
		return AssessmentNeutral
	default:
		return AssessmentNegative
	}
}
