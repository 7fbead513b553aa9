package scoring_test

import (
	"testing"

	"github.com/creditscope/creditscope/pkg/profile"
	"github.com/creditscope/creditscope/pkg/scoring"
)

// strongProfile is a mid-career permanent employee with healthy finances.
func strongProfile() profile.FinancialProfile {
	return profile.FinancialProfile{
		MonthlyIncome:       60000,
		MonthlyExpenses:     20000,
		ExistingDebts:       60000,
		Age:                 40,
		EmploymentType:      profile.EmploymentPermanent,
		EmploymentYears:     10,
		RequestedLoanAmount: 600000,
	}
}

// marginalProfile barely clears validation and should score near the floor.
func marginalProfile() profile.FinancialProfile {
	return profile.FinancialProfile{
		MonthlyIncome:       1000,
		MonthlyExpenses:     950,
		ExistingDebts:       12000,
		Age:                 19,
		EmploymentType:      profile.EmploymentUnemployed,
		EmploymentYears:     0,
		RequestedLoanAmount: 20000,
	}
}

func TestConservativeKnownScore(t *testing.T) {
	p := strongProfile()
	// income 20 + DTI(41.67%) 5 + savings(58.3%) 20 + employment floor(100*0.15)=15 + age 10
	got := scoring.NewConservative().CalculateScore(&p)
	if got != 70 {
		t.Errorf("CalculateScore() = %d, want 70", got)
	}
}

func TestStandardKnownScore(t *testing.T) {
	p := strongProfile()
	// income 18 + DTI 12 + disposable(35000) 20 + employment 15 + net position 10
	got := scoring.NewStandard().CalculateScore(&p)
	if got != 75 {
		t.Errorf("CalculateScore() = %d, want 75", got)
	}
}

func TestAggressiveClampsAt100(t *testing.T) {
	p := strongProfile()
	// base 20 + income 20 + DTI 18 + disposable 15 + employed 15 + tenure 10 + age 15 = 113
	got := scoring.NewAggressive().CalculateScore(&p)
	if got != 100 {
		t.Errorf("CalculateScore() = %d, want clamp at 100", got)
	}
}

func TestAllStrategiesStayInBounds(t *testing.T) {
	extremes := []profile.FinancialProfile{
		strongProfile(),
		marginalProfile(),
		{MonthlyIncome: 1e12, Age: 40, EmploymentType: profile.EmploymentPermanent, EmploymentYears: 40, RequestedLoanAmount: 1},
		{MonthlyIncome: 1, MonthlyExpenses: 1e12, ExistingDebts: 1e12, Age: 100, RequestedLoanAmount: 1e12},
	}

	for _, s := range scoring.DefaultStrategies() {
		for i, p := range extremes {
			got := s.CalculateScore(&p)
			if got < 0 || got > 100 {
				t.Errorf("%s: profile %d scored %d, want [0,100]", s.Name(), i, got)
			}
		}
	}
}

func TestStrategiesAreDeterministic(t *testing.T) {
	p := strongProfile()
	for _, s := range scoring.DefaultStrategies() {
		first := s.CalculateScore(&p)
		for i := 0; i < 3; i++ {
			if got := s.CalculateScore(&p); got != first {
				t.Errorf("%s: score changed between calls: %d then %d", s.Name(), first, got)
			}
		}
	}
}

func TestAIBasedRanksStrongAboveMarginal(t *testing.T) {
	strong := strongProfile()
	marginal := marginalProfile()
	s := scoring.NewAIBased()

	if hs, ms := s.CalculateScore(&strong), s.CalculateScore(&marginal); hs <= ms {
		t.Errorf("strong profile scored %d, marginal %d; want strong higher", hs, ms)
	}
}

func TestForLoanAmountTiers(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{500000, "conservative"},
		{750000, "conservative"},
		{499999, "standard"},
		{100000, "standard"},
		{99999, "aggressive"},
		{5000, "aggressive"},
	}

	for _, tt := range tests {
		if got := scoring.ForLoanAmount(tt.amount).Name(); got != tt.want {
			t.Errorf("ForLoanAmount(%.0f) = %s, want %s", tt.amount, got, tt.want)
		}
	}
}

func TestByName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"conservative", "conservative"},
		{"standard", "standard"},
		{"balanced", "standard"},
		{"aggressive", "aggressive"},
		{"ai", "ai"},
		{"ai-based", "ai"},
		{"neural-net-9000", "standard"}, // unknown names fall back to standard
		{"", "standard"},
	}

	for _, tt := range tests {
		if got := scoring.ByName(tt.name).Name(); got != tt.want {
			t.Errorf("ByName(%q) = %s, want %s", tt.name, got, tt.want)
		}
	}
}
