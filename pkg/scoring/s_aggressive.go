package scoring

import (
	"math"

	"github.com/creditscope/creditscope/pkg/profile"
)

// AggressiveStrategy extends credit further down-market: everyone starts
// with base points, DTI brackets are lenient, and any employment at all is
// rewarded. Selected by the tier factory for small loan requests.
type AggressiveStrategy struct {
	Base              float64
	EmployedBonus     float64 // permanent or contract
	SelfEmployedBonus float64
	TenureCap         float64 // max points from years at the current job
}

func (s *AggressiveStrategy) Name() string { return "aggressive" }

func (s *AggressiveStrategy) CalculateScore(p *profile.FinancialProfile) int {
	score := s.Base

	// Income, max 20
	switch {
	case p.MonthlyIncome >= 50000:
		score += 20
	case p.MonthlyIncome >= 25000:
		score += 14
	case p.MonthlyIncome >= 15000:
		score += 8
	case p.MonthlyIncome >= 8000:
		score += 4
	}

	// DTI, max 25
	switch dti := p.DebtToIncomeRatio(); {
	case dti < 35:
		score += 25
	case dti < 50:
		score += 18
	case dti < 70:
		score += 10
	case dti < 90:
		score += 4
	}

	// Disposable income, max 15
	switch di := p.DisposableIncome(); {
	case di >= 20000:
		score += 15
	case di >= 10000:
		score += 10
	case di >= 3000:
		score += 5
	case di > 0:
		score += 2
	}

	// Employment status flat bonus
	switch p.EmploymentType {
	case profile.EmploymentPermanent, profile.EmploymentContract:
		score += s.EmployedBonus
	case profile.EmploymentSelfEmployed:
		score += s.SelfEmployedBonus
	}

	// Years at job, max TenureCap
	score += math.Min(p.EmploymentYears, s.TenureCap)

	// Age band, max 15
	switch {
	case p.Age >= 25 && p.Age <= 60:
		score += 15
	case p.Age >= 21:
		score += 10
	}

	return clamp(score)
}
