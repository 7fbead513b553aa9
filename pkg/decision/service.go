package decision

import (
	"fmt"
	"math"

	"github.com/creditscope/creditscope/pkg/profile"
	"github.com/creditscope/creditscope/pkg/scoring"
)

// Explanation thresholds. Each signal is evaluated against these in a fixed
// order; crossing one adds a factor (and, for negatives, a reason).
const (
	dtiHealthyMax       = 36.0
	incomeComfortMin    = 3000.0
	stabilityComfortMin = 50.0
	savingsComfortMin   = 10.0
	loanToIncomeMax     = 3.0
	loanToIncomeSevere  = 4.0
)

// Service makes loan decisions. It is stateless: each call validates,
// scores with the production strategy, applies the approval gate, and
// generates explanations and recommendations.
type Service struct {
	calc *scoring.Calculator
}

// NewService creates a decision Service backed by the AI-based strategy.
func NewService() *Service {
	return &Service{calc: scoring.NewCalculator(scoring.NewAIBased())}
}

// NewServiceWithStrategy creates a Service scoring with a specific strategy.
func NewServiceWithStrategy(s scoring.Strategy) *Service {
	return &Service{calc: scoring.NewCalculator(s)}
}

// Decide evaluates one profile end to end. Validation failures are not
// errors: the decision is a denial carrying the validation messages and
// improvement recommendations.
func (s *Service) Decide(p *profile.FinancialProfile) Decision {
	res := s.calc.Score(p)

	if !res.Success {
		return Decision{
			Approved:          false,
			Confidence:        0,
			Score:             scoring.ScoreFloor,
			RiskLevel:         scoring.RiskLevelFromScore(scoring.ScoreFloor),
			Rating:            scoring.RatingFromScore(scoring.ScoreFloor),
			Reasons:           res.Errors,
			Improvements:      improvementRecommendations(p),
			InterestRateRange: RateRangeForScore(scoring.ScoreFloor),
		}
	}

	approved := res.Score >= ApprovalThreshold

	d := Decision{
		Approved:          approved,
		Confidence:        res.ApprovalProbability,
		Score:             res.Score,
		RiskLevel:         res.RiskLevel,
		Rating:            res.Rating,
		InterestRateRange: RateRangeForScore(res.Score),
		MaxLoanAmount:     maxLoanAmount(res.Score, p),
		Breakdown:         res.Breakdown,
	}

	s.explain(&d, p)

	if approved {
		d.LoanRecommendations = loanRecommendations(res.Score, d.MaxLoanAmount, p)
	} else {
		d.Improvements = improvementRecommendations(p)
	}

	return d
}

// explain fills the factor lists and reasons. Signals are evaluated in a
// fixed order (DTI, income, employment, savings, age, loan-to-income) and
// the approve/deny summary is prepended to the reasons last so it always
// reads first.
func (s *Service) explain(d *Decision, p *profile.FinancialProfile) {
	dti := p.DebtToIncomeRatio()
	if dti <= dtiHealthyMax {
		d.PositiveFactors = append(d.PositiveFactors,
			fmt.Sprintf("Debt-to-income ratio of %.1f%% is within the recommended %.0f%%", dti, dtiHealthyMax))
	} else {
		d.NegativeFactors = append(d.NegativeFactors,
			fmt.Sprintf("Debt-to-income ratio of %.1f%% exceeds the recommended %.0f%%", dti, dtiHealthyMax))
		d.Reasons = append(d.Reasons,
			fmt.Sprintf("High debt burden: %.1f%% of monthly income goes to expenses and debt", dti))
	}

	if p.MonthlyIncome >= incomeComfortMin {
		d.PositiveFactors = append(d.PositiveFactors,
			fmt.Sprintf("Monthly income of %.0f supports the repayment schedule", p.MonthlyIncome))
	} else {
		d.NegativeFactors = append(d.NegativeFactors,
			fmt.Sprintf("Monthly income of %.0f is below the comfortable minimum of %.0f", p.MonthlyIncome, incomeComfortMin))
		d.Reasons = append(d.Reasons, "Income may be insufficient for reliable repayment")
	}

	if stability := p.EmploymentStabilityScore(); stability >= stabilityComfortMin {
		d.PositiveFactors = append(d.PositiveFactors,
			fmt.Sprintf("Stable employment (%s, %.0f years)", p.EmploymentType, p.EmploymentYears))
	} else {
		d.NegativeFactors = append(d.NegativeFactors, "Employment situation adds repayment risk")
		d.Reasons = append(d.Reasons, "Unstable employment history")
	}

	if sr := p.SavingsRate(); sr >= savingsComfortMin {
		d.PositiveFactors = append(d.PositiveFactors,
			fmt.Sprintf("Savings rate of %.1f%% provides a repayment buffer", sr))
	} else {
		d.NegativeFactors = append(d.NegativeFactors,
			fmt.Sprintf("Savings rate of %.1f%% leaves little buffer for repayments", sr))
	}

	if p.Age >= 25 && p.Age <= 60 {
		d.PositiveFactors = append(d.PositiveFactors, "Age is within the prime borrowing range")
	} else {
		d.NegativeFactors = append(d.NegativeFactors, "Age is outside the prime borrowing range")
	}

	switch lti := p.LoanToIncomeRatio(); {
	case lti <= loanToIncomeMax:
		d.PositiveFactors = append(d.PositiveFactors,
			fmt.Sprintf("Requested amount is %.1fx annual income, a proportionate ask", lti))
	case lti > loanToIncomeSevere:
		d.NegativeFactors = append(d.NegativeFactors,
			fmt.Sprintf("Requested amount is %.1fx annual income, well above the %.0fx guideline", lti, loanToIncomeMax))
		d.Reasons = append(d.Reasons, "Requested loan amount is large relative to income")
	}

	summary := fmt.Sprintf("DENIED: credit score %d is below the minimum threshold of %d", d.Score, ApprovalThreshold)
	if d.Approved {
		summary = fmt.Sprintf("APPROVED: credit score %d meets the minimum threshold of %d", d.Score, ApprovalThreshold)
	}
	d.Reasons = append([]string{summary}, d.Reasons...)
}

// maxLoanAmount caps lending at the lower of an income multiple and three
// years of disposable income.
func maxLoanAmount(score int, p *profile.FinancialProfile) int {
	byIncome := p.MonthlyIncome * 12 * scoreMultiplier(score)
	byDisposable := p.DisposableIncome() * 36
	return int(math.Floor(math.Min(byIncome, byDisposable)))
}
