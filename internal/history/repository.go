package history

import (
	"context"
	"database/sql"
	"fmt"
)

// Repository handles scan history persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new history repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a history entry
func (r *Repository) Create(ctx context.Context, entry *Entry) error {
	query := `
		INSERT INTO scan_history (id, device_id, receipt_id, restaurant, total, currency, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(ctx, query,
		entry.ID,
		entry.DeviceID,
		entry.ReceiptID,
		entry.Restaurant,
		entry.Total,
		entry.Currency,
		entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert history entry: %w", err)
	}
	return nil
}

// ListByDeviceID retrieves a device's history, newest first
func (r *Repository) ListByDeviceID(ctx context.Context, deviceID string, limit int) ([]*Entry, error) {
	query := `
		SELECT id, device_id, receipt_id, restaurant, total, currency, created_at
		FROM scan_history
		WHERE device_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := r.db.QueryContext(ctx, query, deviceID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		entry := &Entry{}
		err := rows.Scan(
			&entry.ID,
			&entry.DeviceID,
			&entry.ReceiptID,
			&entry.Restaurant,
			&entry.Total,
			&entry.Currency,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan history entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate history: %w", err)
	}

	return entries, nil
}
