package history

import "time"

// Entry is one scanned bill in a device's history.
type Entry struct {
	ID         string    `json:"id"`
	DeviceID   string    `json:"device_id"`
	ReceiptID  string    `json:"receipt_id"`
	Restaurant string    `json:"restaurant"`
	Total      float64   `json:"total"` // grand total at scan time
	Currency   string    `json:"currency"`
	CreatedAt  time.Time `json:"created_at"`
}
