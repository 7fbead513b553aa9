package scoring_test

import (
	"reflect"
	"testing"

	"github.com/creditscope/creditscope/pkg/profile"
	"github.com/creditscope/creditscope/pkg/scoring"
)

func TestRescaleBounds(t *testing.T) {
	if got := scoring.Rescale(0); got != 300 {
		t.Errorf("Rescale(0) = %d, want 300", got)
	}
	if got := scoring.Rescale(100); got != 850 {
		t.Errorf("Rescale(100) = %d, want 850", got)
	}
	for raw := 0; raw <= 100; raw++ {
		got := scoring.Rescale(raw)
		if got < 300 || got > 850 {
			t.Fatalf("Rescale(%d) = %d, outside [300,850]", raw, got)
		}
	}
}

func TestClassificationThresholds(t *testing.T) {
	tests := []struct {
		score       int
		risk        scoring.RiskLevel
		rating      scoring.Rating
		probability int
	}{
		{850, scoring.RiskVeryLow, scoring.RatingExceptional, 95},
		{800, scoring.RiskVeryLow, scoring.RatingExceptional, 95},
		{750, scoring.RiskVeryLow, scoring.RatingVeryGood, 95},
		{740, scoring.RiskLow, scoring.RatingVeryGood, 85},
		{700, scoring.RiskLow, scoring.RatingGood, 85},
		{670, scoring.RiskModerate, scoring.RatingGood, 70},
		{650, scoring.RiskModerate, scoring.RatingFair, 70},
		{600, scoring.RiskHigh, scoring.RatingFair, 50},
		{580, scoring.RiskVeryHigh, scoring.RatingFair, 30},
		{550, scoring.RiskVeryHigh, scoring.RatingPoor, 30},
		{300, scoring.RiskVeryHigh, scoring.RatingPoor, 15},
	}

	for _, tt := range tests {
		if got := scoring.RiskLevelFromScore(tt.score); got != tt.risk {
			t.Errorf("RiskLevelFromScore(%d) = %s, want %s", tt.score, got, tt.risk)
		}
		if got := scoring.RatingFromScore(tt.score); got != tt.rating {
			t.Errorf("RatingFromScore(%d) = %s, want %s", tt.score, got, tt.rating)
		}
		if got := scoring.ApprovalProbability(tt.score); got != tt.probability {
			t.Errorf("ApprovalProbability(%d) = %d, want %d", tt.score, got, tt.probability)
		}
	}
}

func TestCalculatorInvalidProfile(t *testing.T) {
	p := profile.FinancialProfile{Age: 17} // fails several rules
	calc := scoring.NewCalculator(nil)

	res := calc.Score(&p)
	if res.Success {
		t.Fatal("expected Success=false for invalid profile")
	}
	if res.Score != 300 {
		t.Errorf("Score = %d, want sentinel 300", res.Score)
	}
	if len(res.Errors) == 0 {
		t.Error("expected validation errors in result")
	}
	if len(res.Breakdown) != 0 {
		t.Errorf("expected no breakdown for invalid profile, got %d entries", len(res.Breakdown))
	}
}

func TestCalculatorDefaultsToAIStrategy(t *testing.T) {
	p := strongProfile()
	res := scoring.NewCalculator(nil).Score(&p)
	if res.Strategy != "ai" {
		t.Errorf("Strategy = %s, want ai", res.Strategy)
	}
	if !res.Success {
		t.Fatalf("expected success, got errors: %v", res.Errors)
	}
	if res.Score < 300 || res.Score > 850 {
		t.Errorf("Score = %d, outside [300,850]", res.Score)
	}
}

func TestCalculatorIsPure(t *testing.T) {
	p := strongProfile()
	calc := scoring.NewCalculator(scoring.NewConservative())

	first := calc.Score(&p)
	second := calc.Score(&p)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated scoring diverged:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestBreakdownOrderAndAssessments(t *testing.T) {
	p := strongProfile()
	res := scoring.NewCalculator(nil).Score(&p)

	wantKeys := []string{"debt_to_income", "monthly_income", "employment_stability", "savings_rate", "age"}
	if len(res.Breakdown) != len(wantKeys) {
		t.Fatalf("expected %d factors, got %d", len(wantKeys), len(res.Breakdown))
	}
	for i, want := range wantKeys {
		if res.Breakdown[i].Key != want {
			t.Errorf("breakdown[%d].Key = %s, want %s", i, res.Breakdown[i].Key, want)
		}
	}

	byKey := map[string]scoring.FactorAssessment{}
	for _, f := range res.Breakdown {
		byKey[f.Key] = f
	}

	// DTI 41.67% sits between the 30/45 thresholds.
	if got := byKey["debt_to_income"].Assessment; got != scoring.AssessmentNeutral {
		t.Errorf("DTI assessment = %s, want NEUTRAL", got)
	}
	if got := byKey["monthly_income"].Assessment; got != scoring.AssessmentPositive {
		t.Errorf("income assessment = %s, want POSITIVE", got)
	}
	if got := byKey["employment_stability"].Assessment; got != scoring.AssessmentPositive {
		t.Errorf("employment assessment = %s, want POSITIVE", got)
	}
	// Age 40 is in the prime 30-50 band.
	if got := byKey["age"].Assessment; got != scoring.AssessmentPositive {
		t.Errorf("age assessment = %s, want POSITIVE", got)
	}
}

func TestAgeBandAssessment(t *testing.T) {
	tests := []struct {
		age  int
		want scoring.Assessment
	}{
		{30, scoring.AssessmentPositive},
		{50, scoring.AssessmentPositive},
		{25, scoring.AssessmentNeutral},
		{29, scoring.AssessmentNeutral},
		{51, scoring.AssessmentNeutral},
		{60, scoring.AssessmentNeutral},
		{24, scoring.AssessmentNegative},
		{61, scoring.AssessmentNegative},
		{18, scoring.AssessmentNegative},
	}

	for _, tt := range tests {
		p := strongProfile()
		p.Age = tt.age
		res := scoring.NewCalculator(nil).Score(&p)
		var got scoring.Assessment
		for _, f := range res.Breakdown {
			if f.Key == "age" {
				got = f.Assessment
			}
		}
		if got != tt.want {
			t.Errorf("age %d assessed %s, want %s", tt.age, got, tt.want)
		}
	}
}

func TestCompareStrategies(t *testing.T) {
	p := strongProfile()
	results := scoring.CompareStrategies(&p)

	for _, name := range []string{"conservative", "standard", "aggressive", "ai"} {
		res, ok := results[name]
		if !ok {
			t.Errorf("missing strategy %s in comparison", name)
			continue
		}
		if !res.Success {
			t.Errorf("%s: expected success, got errors %v", name, res.Errors)
		}
		if res.Strategy != name {
			t.Errorf("%s: result tagged %s", name, res.Strategy)
		}
	}
}
