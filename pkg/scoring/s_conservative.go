package scoring

import (
	"math"

	"github.com/creditscope/creditscope/pkg/profile"
)

// ConservativeStrategy favors proven repayment capacity: DTI dominates,
// income tiers are strict, and only prime-age applicants get the full age
// bonus. Selected by the tier factory for large loan requests.
type ConservativeStrategy struct {
	EmploymentFactor float64 // stability multiplier, 0.15 yields max 15
}

func (s *ConservativeStrategy) Name() string { return "conservative" }

func (s *ConservativeStrategy) CalculateScore(p *profile.FinancialProfile) int {
	var score float64

	// Income, max 30
	switch {
	case p.MonthlyIncome >= 100000:
		score += 30
	case p.MonthlyIncome >= 50000:
		score += 20
	case p.MonthlyIncome >= 30000:
		score += 10
	case p.MonthlyIncome >= 15000:
		score += 5
	}

	// DTI, max 25
	switch dti := p.DebtToIncomeRatio(); {
	case dti < 20:
		score += 25
	case dti < 30:
		score += 20
	case dti < 40:
		score += 10
	case dti < 50:
		score += 5
	}

	// Savings rate, max 20
	switch sr := p.SavingsRate(); {
	case sr >= 30:
		score += 20
	case sr >= 20:
		score += 15
	case sr >= 10:
		score += 10
	case sr >= 5:
		score += 5
	}

	// Employment stability, max 15
	score += math.Floor(p.EmploymentStabilityScore() * s.EmploymentFactor)

	// Age band, max 10
	switch {
	case p.Age >= 35 && p.Age <= 55:
		score += 10
	case p.Age >= 25 && p.Age <= 60:
		score += 7
	case p.Age >= 21:
		score += 3
	}

	return clamp(score)
}
