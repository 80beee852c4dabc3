package receipt

// RecognitionResult is the raw output of the external recognition
// pipeline. Every field may be absent except items; normalization fills
// in defaults for the rest. Pointer fields distinguish "missing" from a
// legitimate zero.
type RecognitionResult struct {
	Restaurant    *string           `json:"restaurant"`
	TableNumber   *string           `json:"table_number"`
	OrderNumber   *string           `json:"order_number"`
	Date          *string           `json:"date"`
	Time          *string           `json:"time"`
	Waiter        *string           `json:"waiter"`
	Currency      *string           `json:"currency"`
	Items         []RecognizedItem  `json:"items"`
	Total         *float64          `json:"total"`
	VAT           *RecognizedVAT    `json:"vat"`
	ServiceCharge *RecognizedCharge `json:"service_charge"`
}

// RecognizedItem is one raw line item from the recognition pipeline.
type RecognizedItem struct {
	Position int      `json:"position"`
	Name     string   `json:"name"`
	Quantity *float64 `json:"quantity"`
	Price    *float64 `json:"price"`
	Sum      *float64 `json:"sum"`
}

// RecognizedVAT is the raw VAT block.
type RecognizedVAT struct {
	Rate   *float64 `json:"rate"`
	Amount *float64 `json:"amount"`
}

// RecognizedCharge is the raw service charge block.
type RecognizedCharge struct {
	Name   *string  `json:"name"`
	Amount *float64 `json:"amount"`
}

// ReceiptResponse is the API representation of a normalized receipt,
// including the derived totals the settlement screen shows.
type ReceiptResponse struct {
	ID            string        `json:"id"`
	Restaurant    string        `json:"restaurant"`
	TableNumber   string        `json:"table_number"`
	OrderNumber   string        `json:"order_number"`
	Date          string        `json:"date"`
	Time          string        `json:"time"`
	Waiter        string        `json:"waiter"`
	Currency      string        `json:"currency"`
	Items         []LineItem    `json:"items"`
	Subtotal      float64       `json:"subtotal"`
	VAT           VAT           `json:"vat"`
	ServiceCharge ServiceCharge `json:"service_charge"`
	VATAmount     float64       `json:"vat_amount"`
	GrandTotal    float64       `json:"grand_total"`
	CreatedAt     string        `json:"created_at"`
}

// ToResponse converts a Receipt model to its API representation.
func (r *Receipt) ToResponse() *ReceiptResponse {
	return &ReceiptResponse{
		ID:            r.ID,
		Restaurant:    r.Restaurant,
		TableNumber:   r.TableNumber,
		OrderNumber:   r.OrderNumber,
		Date:          r.Date,
		Time:          r.Time,
		Waiter:        r.Waiter,
		Currency:      r.Currency,
		Items:         r.Items,
		Subtotal:      r.Subtotal,
		VAT:           r.VAT,
		ServiceCharge: r.ServiceCharge,
		VATAmount:     r.VATAmount(),
		GrandTotal:    r.GrandTotal(),
		CreatedAt:     r.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
