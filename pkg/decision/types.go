// Package decision turns a credit score into a loan decision: the approval
// gate, plain-language explanations, and either loan product suggestions or
// improvement recommendations.
package decision

import (
	"github.com/creditscope/creditscope/pkg/scoring"
)

// ApprovalThreshold is the single hard gate: scores at or above it approve.
const ApprovalThreshold = 580

// Decision is the complete output of deciding one application.
// Immutable once computed; all fields are plain serializable data.
type Decision struct {
	Approved   bool              `json:"approved"`
	Confidence int               `json:"confidence"` // percent
	Score      int               `json:"score"`
	RiskLevel  scoring.RiskLevel `json:"risk_level"`
	Rating     scoring.Rating    `json:"rating"`

	// Reasons opens with the APPROVED/DENIED summary, followed by each
	// negative finding in evaluation order.
	Reasons         []string `json:"reasons"`
	PositiveFactors []string `json:"positive_factors"`
	NegativeFactors []string `json:"negative_factors"`

	// LoanRecommendations is populated when approved, Improvements when
	// denied (or when validation failed).
	LoanRecommendations []LoanProduct `json:"loan_recommendations,omitempty"`
	Improvements        []Improvement `json:"improvement_recommendations,omitempty"`

	InterestRateRange RateRange                  `json:"interest_rate_range"`
	MaxLoanAmount     int                        `json:"max_loan_amount"`
	Breakdown         []scoring.FactorAssessment `json:"breakdown,omitempty"`
}

// RateRange is an annual interest rate band in percent.
type RateRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// LoanProduct is a suggested loan offering for an approved applicant.
type LoanProduct struct {
	Name          string    `json:"name"`
	MaxAmount     int       `json:"max_amount"`
	RateRange     RateRange `json:"rate_range"`
	TermMonthsMin int       `json:"term_months_min"`
	TermMonthsMax int       `json:"term_months_max"`
	Suitability   string    `json:"suitability"`
}

// Improvement is a prioritized step a denied applicant can take to qualify.
type Improvement struct {
	Priority    Priority `json:"priority"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
}

// Priority ranks how much an improvement is expected to move the score.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
)
