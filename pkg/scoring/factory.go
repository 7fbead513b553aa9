package scoring

// Loan amount tiers for strategy selection. Larger requests get stricter
// scoring.
const (
	conservativeLoanFloor = 500000
	standardLoanFloor     = 100000
)

// NewConservative returns a ConservativeStrategy with default weights.
func NewConservative() *ConservativeStrategy {
	w := Defaults()
	return &ConservativeStrategy{EmploymentFactor: w.EmploymentFactor}
}

// NewStandard returns a StandardStrategy with default weights.
func NewStandard() *StandardStrategy {
	w := Defaults()
	return &StandardStrategy{EmploymentFactor: w.EmploymentFactor}
}

// NewAggressive returns an AggressiveStrategy with default weights.
func NewAggressive() *AggressiveStrategy {
	w := Defaults()
	return &AggressiveStrategy{
		Base:              w.AggressiveBase,
		EmployedBonus:     w.AggressiveEmployedBonus,
		SelfEmployedBonus: w.AggressiveSelfEmployedBonus,
		TenureCap:         w.AggressiveTenureCap,
	}
}

// NewAIBased returns the default production strategy.
func NewAIBased() *AIBasedStrategy {
	w := Defaults()
	return &AIBasedStrategy{
		IncomeMax:     w.AIIncomeMax,
		DebtRatioMax:  w.AIDebtRatioMax,
		SavingsMax:    w.AISavingsMax,
		EmploymentMax: w.AIEmploymentMax,
		AgeMax:        w.AIAgeMax,
		DebtRatioZero: w.AIDebtRatioZero,
	}
}

// ForLoanAmount selects a strategy by requested loan amount: large requests
// are scored conservatively, mid-size with the standard table, small ones
// aggressively.
func ForLoanAmount(amount float64) Strategy {
	switch {
	case amount >= conservativeLoanFloor:
		return NewConservative()
	case amount >= standardLoanFloor:
		return NewStandard()
	default:
		return NewAggressive()
	}
}

// ByName looks up a strategy by name. Unknown names fall back to the
// standard strategy rather than failing; callers that need strictness can
// compare the returned Name().
func ByName(name string) Strategy {
	switch name {
	case "conservative":
		return NewConservative()
	case "standard", "balanced":
		return NewStandard()
	case "aggressive":
		return NewAggressive()
	case "ai", "ai-based":
		return NewAIBased()
	default:
		return NewStandard()
	}
}
