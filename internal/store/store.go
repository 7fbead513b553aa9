// Package store persists applicants and their loan decisions in Postgres.
// The scoring core stays pure; this is the service-side record of what was
// decided, when, and from which profile.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/creditscope/creditscope/pkg/decision"
	"github.com/creditscope/creditscope/pkg/profile"
)

// Service provides applicant and decision persistence backed by Postgres.
type Service struct {
	db *sql.DB
}

// Applicant is one person the service has decided for. ExternalRef ties the
// row to the identity provider's user id; the core never interprets it.
type Applicant struct {
	ID          string    `json:"id"`
	ExternalRef string    `json:"external_ref"`
	DisplayName string    `json:"display_name"`
	CreatedAt   time.Time `json:"created_at"`
}

// DecisionRecord is one stored decision together with the profile it was
// computed from.
type DecisionRecord struct {
	ID          string                   `json:"id"`
	ApplicantID string                   `json:"applicant_id"`
	Strategy    string                   `json:"strategy"`
	Score       int                      `json:"score"`
	Approved    bool                     `json:"approved"`
	Profile     profile.FinancialProfile `json:"profile"`
	Decision    decision.Decision        `json:"decision"`
	ReportRef   string                   `json:"report_ref,omitempty"` // archive key, if archived
	CreatedAt   time.Time                `json:"created_at"`
}

// NewService creates a new store Service.
func NewService(db *sql.DB) *Service {
	return &Service{db: db}
}

// GetOrCreateApplicant upserts an applicant by external reference.
func (s *Service) GetOrCreateApplicant(ctx context.Context, externalRef, displayName string) (*Applicant, error) {
	a := &Applicant{}
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO applicants (external_ref, display_name)
		 VALUES ($1, $2)
		 ON CONFLICT (external_ref) DO UPDATE
		   SET display_name = CASE WHEN EXCLUDED.display_name <> '' THEN EXCLUDED.display_name ELSE applicants.display_name END
		 RETURNING id, external_ref, display_name, created_at`,
		externalRef, displayName,
	).Scan(&a.ID, &a.ExternalRef, &a.DisplayName, &a.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("upsert applicant %s: %w", externalRef, err)
	}
	return a, nil
}

// GetApplicant retrieves an applicant by ID.
func (s *Service) GetApplicant(ctx context.Context, id string) (*Applicant, error) {
	a := &Applicant{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, external_ref, display_name, created_at FROM applicants WHERE id = $1`,
		id,
	).Scan(&a.ID, &a.ExternalRef, &a.DisplayName, &a.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("get applicant %s: %w", id, err)
	}
	return a, nil
}

// SaveDecision stores a decision record. The caller mints the ID so a
// decision keeps its identity even when persistence is unavailable.
func (s *Service) SaveDecision(ctx context.Context, rec *DecisionRecord) error {
	profileJSON, err := json.Marshal(rec.Profile)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	decisionJSON, err := json.Marshal(rec.Decision)
	if err != nil {
		return fmt.Errorf("marshal decision: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO decisions (id, applicant_id, strategy, score, approved, profile, decision, report_ref)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		rec.ID, rec.ApplicantID, rec.Strategy, rec.Score, rec.Approved, profileJSON, decisionJSON, rec.ReportRef,
	)
	if err != nil {
		return fmt.Errorf("save decision %s: %w", rec.ID, err)
	}
	return nil
}

// GetDecision retrieves one decision record by ID.
func (s *Service) GetDecision(ctx context.Context, id string) (*DecisionRecord, error) {
	rec := &DecisionRecord{}
	var profileJSON, decisionJSON []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT id, applicant_id, strategy, score, approved, profile, decision, report_ref, created_at
		 FROM decisions WHERE id = $1`,
		id,
	).Scan(&rec.ID, &rec.ApplicantID, &rec.Strategy, &rec.Score, &rec.Approved,
		&profileJSON, &decisionJSON, &rec.ReportRef, &rec.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("get decision %s: %w", id, err)
	}

	if err := json.Unmarshal(profileJSON, &rec.Profile); err != nil {
		return nil, fmt.Errorf("unmarshal profile for decision %s: %w", id, err)
	}
	if err := json.Unmarshal(decisionJSON, &rec.Decision); err != nil {
		return nil, fmt.Errorf("unmarshal decision %s: %w", id, err)
	}
	return rec, nil
}

// ListDecisions returns an applicant's decisions, newest first.
func (s *Service) ListDecisions(ctx context.Context, applicantID string, limit int) ([]*DecisionRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, applicant_id, strategy, score, approved, profile, decision, report_ref, created_at
		 FROM decisions WHERE applicant_id = $1
		 ORDER BY created_at DESC LIMIT $2`,
		applicantID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list decisions for %s: %w", applicantID, err)
	}
	defer rows.Close()

	var recs []*DecisionRecord
	for rows.Next() {
		rec := &DecisionRecord{}
		var profileJSON, decisionJSON []byte
		if err := rows.Scan(&rec.ID, &rec.ApplicantID, &rec.Strategy, &rec.Score, &rec.Approved,
			&profileJSON, &decisionJSON, &rec.ReportRef, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan decision row: %w", err)
		}
		if err := json.Unmarshal(profileJSON, &rec.Profile); err != nil {
			return nil, fmt.Errorf("unmarshal profile for decision %s: %w", rec.ID, err)
		}
		if err := json.Unmarshal(decisionJSON, &rec.Decision); err != nil {
			return nil, fmt.Errorf("unmarshal decision %s: %w", rec.ID, err)
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}
