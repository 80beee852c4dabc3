package receipt

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Common errors
var (
	ErrReceiptNotFound = errors.New("receipt not found")
)

// ScanRecorder records a successful scan in the device's history.
// Implemented by the history service; kept as an interface so receipts
// know nothing about how history is stored.
type ScanRecorder interface {
	RecordScan(ctx context.Context, deviceID string, rcpt *Receipt) error
}

// Service handles receipt business logic
type Service struct {
	repo     *Repository
	recorder ScanRecorder
}

// NewService creates a new receipt service with dependencies injected
func NewService(repo *Repository, recorder ScanRecorder) *Service {
	return &Service{repo: repo, recorder: recorder}
}

// Ingest normalizes a raw recognition result, persists the receipt and
// records it in the device's scan history.
func (s *Service) Ingest(ctx context.Context, deviceID string, raw *RecognitionResult) (*Receipt, error) {
	rcpt, err := Normalize(raw)
	if err != nil {
		return nil, err
	}

	rcpt.ID = uuid.New().String()
	rcpt.CreatedAt = time.Now().UTC()

	if err := s.repo.Create(ctx, rcpt); err != nil {
		return nil, err
	}

	// History is best effort: a failed history write must not lose the
	// receipt the user just scanned.
	if s.recorder != nil {
		if err := s.recorder.RecordScan(ctx, deviceID, rcpt); err != nil {
			slog.Warn("failed to record scan history", "receipt_id", rcpt.ID, "error", err)
		}
	}

	return rcpt, nil
}

// GetByID retrieves a receipt by ID
func (s *Service) GetByID(ctx context.Context, id string) (*Receipt, error) {
	rcpt, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rcpt == nil {
		return nil, ErrReceiptNotFound
	}
	return rcpt, nil
}
