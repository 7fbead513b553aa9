package decision

import (
	"fmt"

	"github.com/creditscope/creditscope/pkg/profile"
)

// loanRecommendations suggests products an approved applicant qualifies
// for. The base rate band comes from the score and is shifted per product:
// secured products price below it, unsecured business credit above it.
func loanRecommendations(score, maxAmount int, p *profile.FinancialProfile) []LoanProduct {
	base := RateRangeForScore(score)

	products := []LoanProduct{
		{
			Name:          "Personal Loan",
			MaxAmount:     maxAmount,
			RateRange:     base,
			TermMonthsMin: 12,
			TermMonthsMax: 60,
			Suitability:   suitability(score, 700, 620),
		},
	}

	if p.MonthlyIncome > 5000 {
		products = append(products, LoanProduct{
			Name:          "Home Loan",
			MaxAmount:     maxAmount * 4,
			RateRange:     base.shifted(-1.5),
			TermMonthsMin: 120,
			TermMonthsMax: 360,
			Suitability:   suitability(score, 720, 650),
		})
	}

	products = append(products, LoanProduct{
		Name:          "Auto Loan",
		MaxAmount:     maxAmount,
		RateRange:     base.shifted(-0.5),
		TermMonthsMin: 24,
		TermMonthsMax: 84,
		Suitability:   suitability(score, 680, 600),
	})

	if p.EmploymentType == profile.EmploymentSelfEmployed {
		products = append(products, LoanProduct{
			Name:          "Business Loan",
			MaxAmount:     maxAmount * 2,
			RateRange:     base.shifted(2),
			TermMonthsMin: 12,
			TermMonthsMax: 120,
			Suitability:   suitability(score, 740, 660),
		})
	}

	return products
}

// suitability gates the qualitative label by score thresholds.
func suitability(score, excellentAt, goodAt int) string {
	switch {
	case score >= excellentAt:
		return "Excellent fit"
	case score >= goodAt:
		return "Good fit"
	default:
		return "Marginal fit"
	}
}

// improvementRecommendations lists the steps a denied applicant can take,
// keyed to whichever thresholds the profile fails. Order follows the
// explanation order so the lists line up when rendered together.
func improvementRecommendations(p *profile.FinancialProfile) []Improvement {
	var recs []Improvement

	if p.DebtToIncomeRatio() > dtiHealthyMax {
		recs = append(recs, Improvement{
			Priority: PriorityHigh,
			Title:    "Reduce your debt-to-income ratio",
			Description: fmt.Sprintf(
				"Your debt-to-income ratio is %.1f%%. Paying down balances or cutting recurring expenses below %.0f%% of income is the fastest way to raise your score.",
				p.DebtToIncomeRatio(), dtiHealthyMax),
		})
	}

	if p.MonthlyIncome < incomeComfortMin {
		recs = append(recs, Improvement{
			Priority: PriorityMedium,
			Title:    "Increase your monthly income",
			Description: fmt.Sprintf(
				"A monthly income of at least %.0f materially improves approval odds for this loan size.", incomeComfortMin),
		})
	}

	if p.EmploymentStabilityScore() < stabilityComfortMin {
		recs = append(recs, Improvement{
			Priority:    PriorityHigh,
			Title:       "Build a longer employment record",
			Description: "Lenders look for stable employment. More tenure at your current position, or a move to permanent employment, will raise your stability score.",
		})
	}

	if p.SavingsRate() < savingsComfortMin {
		recs = append(recs, Improvement{
			Priority: PriorityMedium,
			Title:    "Grow your savings buffer",
			Description: fmt.Sprintf(
				"Aim to keep at least %.0f%% of your income unspent each month. A visible buffer reassures lenders you can absorb surprises.", savingsComfortMin),
		})
	}

	if p.ExistingDebts > 0 {
		recs = append(recs, Improvement{
			Priority:    PriorityMedium,
			Title:       "Pay down existing debts",
			Description: fmt.Sprintf("Clearing part of your %.0f in outstanding debt frees monthly capacity and lowers your debt-to-income ratio.", p.ExistingDebts),
		})
	}

	if p.LoanToIncomeRatio() > loanToIncomeMax {
		recs = append(recs, Improvement{
			Priority: PriorityHigh,
			Title:    "Request a smaller loan amount",
			Description: fmt.Sprintf(
				"The requested amount is %.1fx your annual income. Staying under %.0fx keeps repayments realistic.",
				p.LoanToIncomeRatio(), loanToIncomeMax),
		})
	}

	return recs
}
