package profile

// ValidationResult reports whether a profile is scoreable and, if not, the
// human-readable reasons why. Errors keep the order the rules are checked in
// so callers can render them deterministically.
type ValidationResult struct {
	IsValid bool     `json:"is_valid"`
	Errors  []string `json:"errors,omitempty"`
}

// Validation messages, one per rule.
const (
	ErrIncomeNotPositive     = "monthly income must be greater than zero"
	ErrExpensesNegative      = "monthly expenses cannot be negative"
	ErrDebtsNegative         = "existing debts cannot be negative"
	ErrAgeBelowMinimum       = "applicant must be at least 18 years old"
	ErrAgeAboveMaximum       = "applicant age cannot exceed 100 years"
	ErrEmploymentYearsNeg    = "employment years cannot be negative"
	ErrLoanAmountNotPositive = "requested loan amount must be greater than zero"
)

// Validate checks the profile against the scoring preconditions. It never
// fails hard: invalid input produces messages, not errors, so the caller can
// surface them directly. This is the sole gate; scores computed from an
// invalid profile are not meaningful.
func (p *FinancialProfile) Validate() ValidationResult {
	var errs []string

	if p.MonthlyIncome <= 0 {
		errs = append(errs, ErrIncomeNotPositive)
	}
	if p.MonthlyExpenses < 0 {
		errs = append(errs, ErrExpensesNegative)
	}
	if p.ExistingDebts < 0 {
		errs = append(errs, ErrDebtsNegative)
	}
	if p.Age < 18 {
		errs = append(errs, ErrAgeBelowMinimum)
	}
	if p.Age > 100 {
		errs = append(errs, ErrAgeAboveMaximum)
	}
	if p.EmploymentYears < 0 {
		errs = append(errs, ErrEmploymentYearsNeg)
	}
	if p.RequestedLoanAmount <= 0 {
		errs = append(errs, ErrLoanAmountNotPositive)
	}

	return ValidationResult{IsValid: len(errs) == 0, Errors: errs}
}
