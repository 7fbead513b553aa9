package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/creditscope/creditscope/internal/pipeline"
	"github.com/creditscope/creditscope/pkg/config"
	"github.com/creditscope/creditscope/pkg/scoring"
)

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	h := NewHandler(pipeline.NewService(nil, nil, nil), config.DefaultConfig(), nil)
	mux := http.NewServeMux()
	h.RegisterRoutes(mux)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func strongProfileBody() map[string]any {
	return map[string]any{
		"monthly_income":        60000,
		"monthly_expenses":      20000,
		"existing_debts":        60000,
		"age":                   40,
		"employment_type":       "permanent",
		"employment_years":      10,
		"requested_loan_amount": 600000,
	}
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	return resp
}

func TestScoreEndpoint(t *testing.T) {
	srv := testServer(t)

	resp := postJSON(t, srv.URL+"/api/v1/score", strongProfileBody())
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var result scoring.ScoreResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !result.Success {
		t.Errorf("expected success, errors: %v", result.Errors)
	}
	if result.Score < scoring.ScoreFloor || result.Score > scoring.ScoreCeiling {
		t.Errorf("Score = %d, out of range", result.Score)
	}
	if len(result.Breakdown) != 5 {
		t.Errorf("breakdown has %d factors, want 5", len(result.Breakdown))
	}
}

func TestScoreEndpointExplicitStrategy(t *testing.T) {
	srv := testServer(t)

	body := strongProfileBody()
	body["strategy"] = "conservative"
	resp := postJSON(t, srv.URL+"/api/v1/score", body)
	defer resp.Body.Close()

	var result scoring.ScoreResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if result.Strategy != "conservative" {
		t.Errorf("Strategy = %q, want conservative", result.Strategy)
	}
}

func TestScoreEndpointInvalidProfile(t *testing.T) {
	srv := testServer(t)

	// Well-formed JSON with a business-invalid profile still scores,
	// returning the sentinel result rather than an HTTP error.
	resp := postJSON(t, srv.URL+"/api/v1/score", map[string]any{"age": 17})
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var result scoring.ScoreResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if result.Success {
		t.Error("expected success=false for invalid profile")
	}
	if result.Score != scoring.ScoreFloor {
		t.Errorf("Score = %d, want sentinel %d", result.Score, scoring.ScoreFloor)
	}
	if len(result.Errors) == 0 {
		t.Error("expected validation errors")
	}
}

func TestScoreEndpointBadJSON(t *testing.T) {
	srv := testServer(t)

	resp, err := http.Post(srv.URL+"/api/v1/score", "application/json", strings.NewReader("{not json"))
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestScoreEndpointWireValidation(t *testing.T) {
	srv := testServer(t)

	body := strongProfileBody()
	body["monthly_income"] = 1e15 // absurd magnitude rejected at the wire
	resp := postJSON(t, srv.URL+"/api/v1/score", body)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestCompareEndpoint(t *testing.T) {
	srv := testServer(t)

	resp := postJSON(t, srv.URL+"/api/v1/score/compare", strongProfileBody())
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var results map[string]scoring.ScoreResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	for _, name := range []string{"conservative", "standard", "aggressive", "ai"} {
		if _, ok := results[name]; !ok {
			t.Errorf("missing strategy %q in comparison", name)
		}
	}
}

func TestDecideEndpointAndLookup(t *testing.T) {
	srv := testServer(t)

	resp := postJSON(t, srv.URL+"/api/v1/decisions", strongProfileBody())
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var res pipeline.Result
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if res.DecisionID == "" {
		t.Fatal("expected a decision ID")
	}
	if !res.Decision.Approved {
		t.Errorf("expected approval, reasons: %v", res.Decision.Reasons)
	}

	// No store is configured, so the lookup must be served by the cache.
	getResp, err := http.Get(srv.URL + "/api/v1/decisions/" + res.DecisionID)
	if err != nil {
		t.Fatalf("GET decision: %v", err)
	}
	defer getResp.Body.Close()

	if getResp.StatusCode != http.StatusOK {
		t.Fatalf("lookup status = %d, want 200", getResp.StatusCode)
	}
	var cached pipeline.Result
	if err := json.NewDecoder(getResp.Body).Decode(&cached); err != nil {
		t.Fatalf("decode lookup: %v", err)
	}
	if cached.DecisionID != res.DecisionID {
		t.Errorf("lookup returned %s, want %s", cached.DecisionID, res.DecisionID)
	}
}

func TestGetDecisionNotFound(t *testing.T) {
	srv := testServer(t)

	resp, err := http.Get(srv.URL + "/api/v1/decisions/no-such-id")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestHistoryLimitValidation(t *testing.T) {
	srv := testServer(t)

	resp, err := http.Get(srv.URL + "/api/v1/applicants/abc/decisions?limit=0")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}
