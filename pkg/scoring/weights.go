package scoring

// DefaultWeights holds the tunable scalar weights for all strategies.
// Tier tables (income brackets, DTI brackets) live with each strategy;
// only the knobs worth overriding in config are collected here.
type DefaultWeights struct {
	// Conservative / Standard: employment stability multiplier
	EmploymentFactor float64

	// Aggressive
	AggressiveBase              float64
	AggressiveEmployedBonus     float64
	AggressiveSelfEmployedBonus float64
	AggressiveTenureCap         float64

	// AI-based signal family maxima
	AIIncomeMax     float64
	AIDebtRatioMax  float64
	AISavingsMax    float64
	AIEmploymentMax float64
	AIAgeMax        float64
	AIDebtRatioZero float64 // DTI percentage at which the DTI component reaches 0
}

// Defaults returns the default scoring weights.
func Defaults() DefaultWeights {
	return DefaultWeights{
		EmploymentFactor: 0.15,

		AggressiveBase:              20,
		AggressiveEmployedBonus:     15,
		AggressiveSelfEmployedBonus: 10,
		AggressiveTenureCap:         10,

		AIIncomeMax:     30,
		AIDebtRatioMax:  30,
		AISavingsMax:    15,
		AIEmploymentMax: 15,
		AIAgeMax:        10,
		AIDebtRatioZero: 80,
	}
}

// DefaultStrategies returns the standard strategy set with default weights.
func DefaultStrategies() []Strategy {
	w := Defaults()
	return []Strategy{
		&ConservativeStrategy{EmploymentFactor: w.EmploymentFactor},
		&StandardStrategy{EmploymentFactor: w.EmploymentFactor},
		&AggressiveStrategy{
			Base:              w.AggressiveBase,
			EmployedBonus:     w.AggressiveEmployedBonus,
			SelfEmployedBonus: w.AggressiveSelfEmployedBonus,
			TenureCap:         w.AggressiveTenureCap,
		},
		&AIBasedStrategy{
			IncomeMax:     w.AIIncomeMax,
			DebtRatioMax:  w.AIDebtRatioMax,
			SavingsMax:    w.AISavingsMax,
			EmploymentMax: w.AIEmploymentMax,
			AgeMax:        w.AIAgeMax,
			DebtRatioZero: w.AIDebtRatioZero,
		},
	}
}
