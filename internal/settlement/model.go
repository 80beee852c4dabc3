package settlement

import (
	"github.com/splitcheck/splitcheck/internal/receipt"
	"github.com/splitcheck/splitcheck/internal/split"
)

// PersonBill is one participant's slice of the settlement: their owed
// amount and the claimed line items at their split price.
type PersonBill struct {
	ParticipantID string               `json:"participant_id"`
	Name          string               `json:"name"`
	Amount        float64              `json:"amount"`
	Items         []split.ClaimedShare `json:"items,omitempty"`
}

// View is everything a settlement screen shows. It is a read-only
// projection recomputed on demand from the session's selections, never
// stored state that could drift from them.
type View struct {
	SessionID          string                `json:"session_id"`
	Currency           string                `json:"currency"`
	Subtotal           float64               `json:"subtotal"`
	VATRate            float64               `json:"vat_rate"`
	VATAmount          float64               `json:"vat_amount"`
	ServiceCharge      receipt.ServiceCharge `json:"service_charge"`
	GrandTotal         float64               `json:"grand_total"`
	ClaimedTotal       float64               `json:"claimed_total"`
	RemainingUnclaimed float64               `json:"remaining_unclaimed"`
	People             []PersonBill          `json:"people"`
}
