package scoring

import (
	"math"

	"github.com/creditscope/creditscope/pkg/profile"
)

// StandardStrategy is the balanced middle ground between the conservative
// and aggressive tables. It is also the fallback when a strategy is looked
// up by an unknown name.
type StandardStrategy struct {
	EmploymentFactor float64
}

func (s *StandardStrategy) Name() string { return "standard" }

func (s *StandardStrategy) CalculateScore(p *profile.FinancialProfile) int {
	var score float64

	// Income, max 25
	switch {
	case p.MonthlyIncome >= 80000:
		score += 25
	case p.MonthlyIncome >= 40000:
		score += 18
	case p.MonthlyIncome >= 20000:
		score += 10
	case p.MonthlyIncome >= 10000:
		score += 5
	}

	// DTI, max 30
	switch dti := p.DebtToIncomeRatio(); {
	case dti < 25:
		score += 30
	case dti < 35:
		score += 22
	case dti < 45:
		score += 12
	case dti < 60:
		score += 5
	}

	// Disposable income, max 20
	switch di := p.DisposableIncome(); {
	case di >= 30000:
		score += 20
	case di >= 15000:
		score += 14
	case di >= 5000:
		score += 8
	case di > 0:
		score += 3
	}

	// Employment stability, max 15
	score += math.Floor(p.EmploymentStabilityScore() * s.EmploymentFactor)

	// Net position, max 10. The profile carries no asset statement, so
	// annual disposable income less outstanding debt stands in for net worth.
	switch net := p.DisposableIncome()*12 - p.ExistingDebts; {
	case net >= 100000:
		score += 10
	case net >= 50000:
		score += 7
	case net >= 10000:
		score += 4
	case net > 0:
		score += 2
	}

	return clamp(score)
}
