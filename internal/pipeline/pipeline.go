// Package pipeline orchestrates one decision request end to end: score and
// decide with the pure core, then persist and archive the outcome. The core
// result is authoritative; persistence and archival are best-effort and a
// failure there never changes the decision the caller gets back.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/creditscope/creditscope/internal/archive"
	"github.com/creditscope/creditscope/internal/store"
	"github.com/creditscope/creditscope/pkg/decision"
	"github.com/creditscope/creditscope/pkg/profile"
	"github.com/creditscope/creditscope/pkg/surface"
)

// Request describes one decision request.
type Request struct {
	// ExternalRef is the identity provider's user id. Optional; anonymous
	// requests are decided but not tied to an applicant record.
	ExternalRef string
	DisplayName string
	Profile     profile.FinancialProfile
}

// Result is the processed outcome.
type Result struct {
	DecisionID  string            `json:"decision_id"`
	ApplicantID string            `json:"applicant_id,omitempty"`
	Decision    decision.Decision `json:"decision"`
	CreatedAt   time.Time         `json:"created_at"`
}

// Service runs the decision pipeline. Store and storage may be nil for
// stateless deployments; the decider is required.
type Service struct {
	store   *store.Service
	storage archive.StorageClient
	decider *decision.Service
}

// NewService creates a pipeline Service.
func NewService(st *store.Service, storage archive.StorageClient, decider *decision.Service) *Service {
	if decider == nil {
		decider = decision.NewService()
	}
	return &Service{store: st, storage: storage, decider: decider}
}

// Process decides one request and records the outcome.
func (s *Service) Process(ctx context.Context, req Request) (*Result, error) {
	d := s.decider.Decide(&req.Profile)

	res := &Result{
		DecisionID: uuid.New().String(),
		Decision:   d,
		CreatedAt:  time.Now().UTC(),
	}

	if s.store != nil && req.ExternalRef != "" {
		applicant, err := s.store.GetOrCreateApplicant(ctx, req.ExternalRef, req.DisplayName)
		if err != nil {
			log.Printf("pipeline: upsert applicant %s: %v", req.ExternalRef, err)
		} else {
			res.ApplicantID = applicant.ID
			rec := &store.DecisionRecord{
				ID:          res.DecisionID,
				ApplicantID: applicant.ID,
				Strategy:    "ai",
				Score:       d.Score,
				Approved:    d.Approved,
				Profile:     req.Profile,
				Decision:    d,
			}
			if s.storage != nil {
				rec.ReportRef = res.DecisionID
			}
			if err := s.store.SaveDecision(ctx, rec); err != nil {
				log.Printf("pipeline: save decision: %v", err)
			}
		}
	}

	if s.storage != nil {
		s.archiveArtifacts(ctx, res)
	}

	return res, nil
}

// archiveArtifacts writes the JSON record and the Markdown report. Failures
// are logged; the decision has already been made.
func (s *Service) archiveArtifacts(ctx context.Context, res *Result) {
	applicantID := res.ApplicantID
	if applicantID == "" {
		applicantID = "_anonymous"
	}

	data, err := json.Marshal(res)
	if err != nil {
		log.Printf("pipeline: marshal decision %s: %v", res.DecisionID, err)
		return
	}
	if err := s.storage.PutDecision(ctx, applicantID, res.DecisionID, data); err != nil {
		log.Printf("pipeline: archive decision %s: %v", res.DecisionID, err)
	}

	report := surface.BuildMarkdownSummary(&res.Decision)
	if err := s.storage.PutReport(ctx, applicantID, res.DecisionID, []byte(report)); err != nil {
		log.Printf("pipeline: archive report %s: %v", res.DecisionID, err)
	}
}

// Lookup retrieves a stored decision by ID.
func (s *Service) Lookup(ctx context.Context, decisionID string) (*store.DecisionRecord, error) {
	if s.store == nil {
		return nil, fmt.Errorf("no decision store configured")
	}
	return s.store.GetDecision(ctx, decisionID)
}

// History lists an applicant's stored decisions, newest first.
func (s *Service) History(ctx context.Context, applicantID string, limit int) ([]*store.DecisionRecord, error) {
	if s.store == nil {
		return nil, fmt.Errorf("no decision store configured")
	}
	return s.store.ListDecisions(ctx, applicantID, limit)
}
