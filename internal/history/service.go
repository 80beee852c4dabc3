package history

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/splitcheck/splitcheck/internal/receipt"
)

const defaultLimit = 50

// Service handles scan history business logic
type Service struct {
	repo *Repository
}

// NewService creates a new history service
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// RecordScan stores a freshly ingested receipt in the device's history.
// It implements receipt.ScanRecorder.
func (s *Service) RecordScan(ctx context.Context, deviceID string, rcpt *receipt.Receipt) error {
	entry := &Entry{
		ID:         uuid.New().String(),
		DeviceID:   deviceID,
		ReceiptID:  rcpt.ID,
		Restaurant: rcpt.Restaurant,
		Total:      rcpt.GrandTotal(),
		Currency:   rcpt.Currency,
		CreatedAt:  time.Now().UTC(),
	}
	return s.repo.Create(ctx, entry)
}

// List returns the device's scan history, newest first.
func (s *Service) List(ctx context.Context, deviceID string, limit int) ([]*Entry, error) {
	if limit < 1 || limit > 200 {
		limit = defaultLimit
	}
	return s.repo.ListByDeviceID(ctx, deviceID, limit)
}
