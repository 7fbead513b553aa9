// Package profile defines the applicant financial profile and the metrics
// derived from it. All derived values are pure functions of the raw fields,
// computed on demand so they can never go stale.
package profile

// EmploymentType classifies how the applicant is employed.
type EmploymentType string

const (
	EmploymentPermanent    EmploymentType = "permanent"
	EmploymentContract     EmploymentType = "contract"
	EmploymentSelfEmployed EmploymentType = "self-employed"
	EmploymentUnemployed   EmploymentType = "unemployed"
)

// FinancialProfile is one applicant's financial snapshot at scoring time.
// It is constructed fresh per request and never mutated afterwards.
type FinancialProfile struct {
	MonthlyIncome       float64        `json:"monthly_income"`
	MonthlyExpenses     float64        `json:"monthly_expenses"`
	ExistingDebts       float64        `json:"existing_debts"` // annual total
	Age                 int            `json:"age"`
	EmploymentType      EmploymentType `json:"employment_type"`
	EmploymentYears     float64        `json:"employment_years"`
	RequestedLoanAmount float64        `json:"requested_loan_amount"`
}

// monthlyDebtService is the monthly-equivalent share of the annual debt total.
func (p *FinancialProfile) monthlyDebtService() float64 {
	return p.ExistingDebts / 12
}

// DebtToIncomeRatio returns the percentage of monthly income consumed by
// expenses plus amortized debt, capped at 100. A zero income is treated as
// the worst case (100), not as a division error.
func (p *FinancialProfile) DebtToIncomeRatio() float64 {
	if p.MonthlyIncome <= 0 {
		return 100
	}
	ratio := (p.MonthlyExpenses + p.monthlyDebtService()) / p.MonthlyIncome * 100
	if ratio > 100 {
		return 100
	}
	return ratio
}

// DisposableIncome returns income remaining after expenses and debt service,
// floored at zero.
func (p *FinancialProfile) DisposableIncome() float64 {
	d := p.MonthlyIncome - p.MonthlyExpenses - p.monthlyDebtService()
	if d < 0 {
		return 0
	}
	return d
}

// SavingsRate returns disposable income as a percentage of monthly income,
// or 0 when there is no income.
func (p *FinancialProfile) SavingsRate() float64 {
	if p.MonthlyIncome <= 0 {
		return 0
	}
	rate := p.DisposableIncome() / p.MonthlyIncome * 100
	if rate < 0 {
		return 0
	}
	return rate
}

// LoanToIncomeRatio returns the requested amount as a multiple of annual
// income, or 0 when annual income is zero.
func (p *FinancialProfile) LoanToIncomeRatio() float64 {
	annual := p.MonthlyIncome * 12
	if annual <= 0 {
		return 0
	}
	return p.RequestedLoanAmount / annual
}

// EmploymentStabilityScore returns a 0-100 proxy for job-loss risk:
// a base tier per employment type plus up to 20 points for tenure.
func (p *FinancialProfile) EmploymentStabilityScore() float64 {
	var base float64
	switch p.EmploymentType {
	case EmploymentPermanent:
		base = 80
	case EmploymentContract:
		base = 60
	case EmploymentSelfEmployed:
		base = 50
	case EmploymentUnemployed:
		base = 0
	default:
		base = 40
	}

	tenure := p.EmploymentYears * 2
	if tenure > 20 {
		tenure = 20
	}

	score := base + tenure
	if score > 100 {
		return 100
	}
	return score
}

// AgeRiskScore returns a 0-100 age risk (lower is better), tiered by bracket.
func (p *FinancialProfile) AgeRiskScore() float64 {
	switch {
	case p.Age < 21:
		return 70
	case p.Age < 25:
		return 50
	case p.Age < 30:
		return 30
	case p.Age < 50:
		return 10
	case p.Age < 60:
		return 20
	case p.Age < 65:
		return 40
	default:
		return 60
	}
}
