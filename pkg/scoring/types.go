// Package scoring implements the Creditscope credit scoring engine.
// Strategies map a financial profile to a raw 0-100 score; the calculator
// rescales it to the familiar 300-850 credit domain and classifies it.
package scoring

// Credit score domain bounds. ScoreFloor doubles as the sentinel returned
// when a profile fails validation.
const (
	ScoreFloor   = 300
	ScoreCeiling = 850
)

// ScoreResult is the complete output of scoring one profile.
// Immutable once computed.
type ScoreResult struct {
	Success             bool               `json:"success"`
	Strategy            string             `json:"strategy"`
	RawScore            int                `json:"raw_score"` // 0-100
	Score               int                `json:"score"`     // 300-850
	RiskLevel           RiskLevel          `json:"risk_level"`
	Rating              Rating             `json:"rating"`
	ApprovalProbability int                `json:"approval_probability"` // percent
	Breakdown           []FactorAssessment `json:"breakdown"`
	Errors              []string           `json:"errors,omitempty"`
}

// FactorAssessment tags one contributing factor of the score.
type FactorAssessment struct {
	Key        string     `json:"key"`   // machine key: "debt_to_income"
	Name       string     `json:"name"`  // human name: "Debt-to-income ratio"
	Value      float64    `json:"value"` // the metric value that was assessed
	Assessment Assessment `json:"assessment"`
}

// Assessment indicates whether a factor helps or hurts the score.
type Assessment string

const (
	AssessmentPositive Assessment = "POSITIVE"
	AssessmentNeutral  Assessment = "NEUTRAL"
	AssessmentNegative Assessment = "NEGATIVE"
)

// RiskLevel is the categorical default-risk label for a credit score.
type RiskLevel string

const (
	RiskVeryLow  RiskLevel = "Very Low"
	RiskLow      RiskLevel = "Low"
	RiskModerate RiskLevel = "Moderate"
	RiskHigh     RiskLevel = "High"
	RiskVeryHigh RiskLevel = "Very High"
)

// Rating is the consumer-facing credit rating band.
type Rating string

const (
	RatingExceptional Rating = "Exceptional"
	RatingVeryGood    Rating = "Very Good"
	RatingGood        Rating = "Good"
	RatingFair        Rating = "Fair"
	RatingPoor        Rating = "Poor"
)

// Rescale maps a raw 0-100 strategy score into the 300-850 credit domain.
func Rescale(raw int) int {
	score := ScoreFloor + int(float64(raw)*5.5+0.5)
	if score > ScoreCeiling {
		return ScoreCeiling
	}
	if score < ScoreFloor {
		return ScoreFloor
	}
	return score
}

// RiskLevelFromScore maps a 300-850 score to a risk level.
func RiskLevelFromScore(score int) RiskLevel {
	switch {
	case score >= 750:
		return RiskVeryLow
	case score >= 700:
		return RiskLow
	case score >= 650:
		return RiskModerate
	case score >= 600:
		return RiskHigh
	default:
		return RiskVeryHigh
	}
}

// RatingFromScore maps a 300-850 score to a rating band.
func RatingFromScore(score int) Rating {
	switch {
	case score >= 800:
		return RatingExceptional
	case score >= 740:
		return RatingVeryGood
	case score >= 670:
		return RatingGood
	case score >= 580:
		return RatingFair
	default:
		return RatingPoor
	}
}

// ApprovalProbability estimates the percent chance of approval for a
// 300-850 score.
func ApprovalProbability(score int) int {
	switch {
	case score >= 750:
		return 95
	case score >= 700:
		return 85
	case score >= 650:
		return 70
	case score >= 600:
		return 50
	case score >= 550:
		return 30
	default:
		return 15
	}
}

// clamp bounds a raw strategy score to [0,100].
func clamp(score float64) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return int(score)
}
