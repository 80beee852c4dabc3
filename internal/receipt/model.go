package receipt

import "time"

// LineItem is one priced entry on a scanned bill.
type LineItem struct {
	Position int     `json:"position"` // stable ordering key within the receipt
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"` // printed units, may be fractional (e.g. 0.5)
	Price    float64 `json:"price"`    // printed per-unit price
	Sum      float64 `json:"sum"`      // printed line total; authoritative, never recomputed
}

// VAT holds the printed VAT figures. The amount is display provenance
// only; settlement math always derives VAT from Receipt.VATAmount.
type VAT struct {
	Rate   float64 `json:"rate"` // percentage, e.g. 12 means 12%
	Amount float64 `json:"amount"`
}

// ServiceCharge is a named absolute amount, not a percentage.
type ServiceCharge struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// Receipt is a normalized scanned bill. A receipt is created once per
// scan and never mutated afterwards; splitting sessions only read it.
type Receipt struct {
	ID            string        `json:"id"`
	Restaurant    string        `json:"restaurant"`
	TableNumber   string        `json:"table_number"`
	OrderNumber   string        `json:"order_number"`
	Date          string        `json:"date"`
	Time          string        `json:"time"`
	Waiter        string        `json:"waiter"`
	Currency      string        `json:"currency"`
	Items         []LineItem    `json:"items"` // in receipt print order
	Subtotal      float64       `json:"subtotal"`
	VAT           VAT           `json:"vat"`
	ServiceCharge ServiceCharge `json:"service_charge"`
	CreatedAt     time.Time     `json:"created_at"`
}

// VATAmount derives the VAT from the printed subtotal. The derived value
// is authoritative for settlement math even when the receipt prints a
// different figure.
func (r *Receipt) VATAmount() float64 {
	return r.Subtotal * r.VAT.Rate / 100
}

// GrandTotal is subtotal plus service charge plus derived VAT.
func (r *Receipt) GrandTotal() float64 {
	return r.Subtotal + r.ServiceCharge.Amount + r.VATAmount()
}

// Item returns the line item at the given position.
func (r *Receipt) Item(position int) (LineItem, bool) {
	for _, it := range r.Items {
		if it.Position == position {
			return it, true
		}
	}
	return LineItem{}, false
}
