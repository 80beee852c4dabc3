package history

import "github.com/splitcheck/splitcheck/pkg/money"

// EntryResponse represents one history entry with its display amount.
type EntryResponse struct {
	ID             string  `json:"id"`
	ReceiptID      string  `json:"receipt_id"`
	Restaurant     string  `json:"restaurant"`
	Total          float64 `json:"total"`
	FormattedTotal string  `json:"formatted_total"`
	Currency       string  `json:"currency"`
	CreatedAt      string  `json:"created_at"`
}

// ToResponse converts an Entry model to an EntryResponse DTO
func (e *Entry) ToResponse() *EntryResponse {
	return &EntryResponse{
		ID:             e.ID,
		ReceiptID:      e.ReceiptID,
		Restaurant:     e.Restaurant,
		Total:          e.Total,
		FormattedTotal: money.Format(e.Total, e.Currency),
		Currency:       e.Currency,
		CreatedAt:      e.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
