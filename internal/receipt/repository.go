package receipt

import (
	"context"
	"database/sql"
	"fmt"
)

// Repository handles receipt persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new receipt repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a normalized receipt and its line items in one transaction
func (r *Repository) Create(ctx context.Context, rcpt *Receipt) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO receipts (id, restaurant, table_number, order_number, date, time_of_day, waiter,
			currency, subtotal, vat_rate, vat_printed_amount, service_name, service_amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`
	_, err = tx.ExecContext(ctx, query,
		rcpt.ID,
		rcpt.Restaurant,
		rcpt.TableNumber,
		rcpt.OrderNumber,
		rcpt.Date,
		rcpt.Time,
		rcpt.Waiter,
		rcpt.Currency,
		rcpt.Subtotal,
		rcpt.VAT.Rate,
		rcpt.VAT.Amount,
		rcpt.ServiceCharge.Name,
		rcpt.ServiceCharge.Amount,
		rcpt.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert receipt: %w", err)
	}

	itemQuery := `
		INSERT INTO receipt_items (receipt_id, position, name, quantity, price, sum)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	for _, item := range rcpt.Items {
		_, err = tx.ExecContext(ctx, itemQuery,
			rcpt.ID,
			item.Position,
			item.Name,
			item.Quantity,
			item.Price,
			item.Sum,
		)
		if err != nil {
			return fmt.Errorf("failed to insert line item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetByID retrieves a receipt with its line items, or nil when not found
func (r *Repository) GetByID(ctx context.Context, id string) (*Receipt, error) {
	query := `
		SELECT id, restaurant, table_number, order_number, date, time_of_day, waiter,
			currency, subtotal, vat_rate, vat_printed_amount, service_name, service_amount, created_at
		FROM receipts
		WHERE id = $1
	`

	rcpt := &Receipt{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&rcpt.ID,
		&rcpt.Restaurant,
		&rcpt.TableNumber,
		&rcpt.OrderNumber,
		&rcpt.Date,
		&rcpt.Time,
		&rcpt.Waiter,
		&rcpt.Currency,
		&rcpt.Subtotal,
		&rcpt.VAT.Rate,
		&rcpt.VAT.Amount,
		&rcpt.ServiceCharge.Name,
		&rcpt.ServiceCharge.Amount,
		&rcpt.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get receipt: %w", err)
	}

	itemQuery := `
		SELECT position, name, quantity, price, sum
		FROM receipt_items
		WHERE receipt_id = $1
		ORDER BY position
	`
	rows, err := r.db.QueryContext(ctx, itemQuery, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get line items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item LineItem
		if err := rows.Scan(&item.Position, &item.Name, &item.Quantity, &item.Price, &item.Sum); err != nil {
			return nil, fmt.Errorf("failed to scan line item: %w", err)
		}
		rcpt.Items = append(rcpt.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate line items: %w", err)
	}

	return rcpt, nil
}
