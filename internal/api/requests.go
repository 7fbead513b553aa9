package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/creditscope/creditscope/internal/pipeline"
	"github.com/creditscope/creditscope/pkg/config"
	"github.com/creditscope/creditscope/pkg/decision"
	"github.com/creditscope/creditscope/pkg/profile"
	"github.com/creditscope/creditscope/pkg/scoring"
)

// validate checks wire-level sanity only (absurd magnitudes, oversized
// strings). Business validation with ordered messages stays in the profile
// package so invalid-but-well-formed profiles still get a scored response.
var validate = validator.New(validator.WithRequiredStructEnabled())

// scoreRequest is the JSON body for POST /api/v1/score and /score/compare.
type scoreRequest struct {
	Strategy            string  `json:"strategy" validate:"omitempty,max=32"`
	MonthlyIncome       float64 `json:"monthly_income" validate:"lte=1000000000000"`
	MonthlyExpenses     float64 `json:"monthly_expenses" validate:"lte=1000000000000"`
	ExistingDebts       float64 `json:"existing_debts" validate:"lte=1000000000000"`
	Age                 int     `json:"age" validate:"lte=1000"`
	EmploymentType      string  `json:"employment_type" validate:"max=64"`
	EmploymentYears     float64 `json:"employment_years" validate:"lte=100"`
	RequestedLoanAmount float64 `json:"requested_loan_amount" validate:"lte=1000000000000"`
}

// decideRequest is the JSON body for POST /api/v1/decisions.
type decideRequest struct {
	scoreRequest
	ExternalRef string `json:"external_ref" validate:"omitempty,max=128"`
	DisplayName string `json:"display_name" validate:"omitempty,max=256"`
}

func (r *scoreRequest) toProfile() profile.FinancialProfile {
	return profile.FinancialProfile{
		MonthlyIncome:       r.MonthlyIncome,
		MonthlyExpenses:     r.MonthlyExpenses,
		ExistingDebts:       r.ExistingDebts,
		Age:                 r.Age,
		EmploymentType:      profile.EmploymentType(r.EmploymentType),
		EmploymentYears:     r.EmploymentYears,
		RequestedLoanAmount: r.RequestedLoanAmount,
	}
}

// decodeAndValidate decodes the JSON body into dst and runs wire validation.
func decodeAndValidate(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	if err := validate.Struct(dst); err != nil {
		return fmt.Errorf("invalid request: %w", err)
	}
	return nil
}

func (h *Handler) handleScore(w http.ResponseWriter, r *http.Request) {
	var req scoreRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	p := req.toProfile()
	var strategy scoring.Strategy
	if req.Strategy != "" {
		strategy = config.StrategyFromWeights(req.Strategy, h.cfg.ScoringWeights())
	} else {
		strategy = h.cfg.DefaultStrategy()
	}

	result := scoring.NewCalculator(strategy).Score(&p)
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) handleCompare(w http.ResponseWriter, r *http.Request) {
	var req scoreRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	p := req.toProfile()
	writeJSON(w, http.StatusOK, scoring.CompareStrategies(&p))
}

func (h *Handler) handleDecide(w http.ResponseWriter, r *http.Request) {
	var req decideRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.pipeline.Process(r.Context(), pipeline.Request{
		ExternalRef: req.ExternalRef,
		DisplayName: req.DisplayName,
		Profile:     req.toProfile(),
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.cache.Put(r.Context(), res.DecisionID, res)
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) handleGetDecision(w http.ResponseWriter, r *http.Request) {
	decisionID := r.PathValue("decisionID")

	if res, ok := h.cache.Get(r.Context(), decisionID); ok {
		writeJSON(w, http.StatusOK, res)
		return
	}

	rec, err := h.pipeline.Lookup(r.Context(), decisionID)
	if err != nil {
		writeError(w, http.StatusNotFound, "decision not found: "+decisionID)
		return
	}

	res := &pipeline.Result{
		DecisionID:  rec.ID,
		ApplicantID: rec.ApplicantID,
		Decision:    rec.Decision,
		CreatedAt:   rec.CreatedAt,
	}
	h.cache.Put(r.Context(), decisionID, res)
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	applicantID := r.PathValue("applicantID")

	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 || parsed > 200 {
			writeError(w, http.StatusBadRequest, "limit must be an integer in [1,200]")
			return
		}
		limit = parsed
	}

	recs, err := h.pipeline.History(r.Context(), applicantID, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	// Decisions are large; the history view keeps the summary fields.
	type historyEntry struct {
		DecisionID string             `json:"decision_id"`
		Score      int                `json:"score"`
		Approved   bool               `json:"approved"`
		RiskLevel  scoring.RiskLevel  `json:"risk_level"`
		Rating     scoring.Rating     `json:"rating"`
		RateRange  decision.RateRange `json:"interest_rate_range"`
		CreatedAt  string             `json:"created_at"`
	}
	entries := make([]historyEntry, 0, len(recs))
	for _, rec := range recs {
		entries = append(entries, historyEntry{
			DecisionID: rec.ID,
			Score:      rec.Score,
			Approved:   rec.Approved,
			RiskLevel:  rec.Decision.RiskLevel,
			Rating:     rec.Decision.Rating,
			RateRange:  rec.Decision.InterestRateRange,
			CreatedAt:  rec.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}
	writeJSON(w, http.StatusOK, entries)
}
