// Package archive stores decision artifacts in blob storage: the full
// decision record as JSON and the human-readable Markdown report. Backends
// cover local disk for development plus S3 and GCS for hosted deployments.
package archive

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// StorageClient abstracts blob storage for decision artifacts.
type StorageClient interface {
	PutDecision(ctx context.Context, applicantID, decisionID string, data []byte) error
	GetDecision(ctx context.Context, applicantID, decisionID string) ([]byte, error)
	PutReport(ctx context.Context, applicantID, decisionID string, data []byte) error
	GetReport(ctx context.Context, applicantID, decisionID string) ([]byte, error)
}

// LocalStorage implements StorageClient using the local filesystem.
// Useful for development and testing.
type LocalStorage struct {
	BaseDir string
}

// NewLocalStorage creates a LocalStorage rooted at the given directory.
func NewLocalStorage(baseDir string) *LocalStorage {
	return &LocalStorage{BaseDir: baseDir}
}

func (s *LocalStorage) path(applicantID, kind, id, ext string) string {
	return filepath.Join(s.BaseDir, applicantID, kind, id+ext)
}

func (s *LocalStorage) put(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// PutDecision stores a decision record blob.
func (s *LocalStorage) PutDecision(ctx context.Context, applicantID, decisionID string, data []byte) error {
	return s.put(s.path(applicantID, "decisions", decisionID, ".json"), data)
}

// GetDecision retrieves a decision record blob.
func (s *LocalStorage) GetDecision(ctx context.Context, applicantID, decisionID string) ([]byte, error) {
	return os.ReadFile(s.path(applicantID, "decisions", decisionID, ".json"))
}

// PutReport stores a Markdown report blob.
func (s *LocalStorage) PutReport(ctx context.Context, applicantID, decisionID string, data []byte) error {
	return s.put(s.path(applicantID, "reports", decisionID, ".md"), data)
}

// GetReport retrieves a Markdown report blob.
func (s *LocalStorage) GetReport(ctx context.Context, applicantID, decisionID string) ([]byte, error) {
	return os.ReadFile(s.path(applicantID, "reports", decisionID, ".md"))
}
