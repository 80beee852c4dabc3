package receipt

import (
	"errors"

	"github.com/splitcheck/splitcheck/pkg/money"
)

// ErrMalformedReceipt is returned when the recognition result carries no
// item sequence at all. It is the only hard normalization failure.
var ErrMalformedReceipt = errors.New("recognition result has no item sequence")

const (
	unknownPlaceholder = "Unknown"
	naPlaceholder      = "N/A"
	defaultServiceName = "Service Charge"
)

// Normalize converts a raw recognition result into a well-formed Receipt.
//
// The recognition pipeline is noisy: missing fields degrade to defaults
// so that a partially unreadable bill still produces a splittable
// receipt. A missing item sequence is the one case that fails, because
// there is nothing left to split.
func Normalize(raw *RecognitionResult) (*Receipt, error) {
	if raw == nil || raw.Items == nil {
		return nil, ErrMalformedReceipt
	}

	items := make([]LineItem, len(raw.Items))
	var itemsSum float64
	for i, ri := range raw.Items {
		it := LineItem{
			Position: ri.Position,
			Name:     ri.Name,
			Quantity: floatOrZero(ri.Quantity),
			Price:    floatOrZero(ri.Price),
		}
		if it.Position == 0 {
			it.Position = i + 1
		}
		if it.Name == "" {
			it.Name = unknownPlaceholder
		}
		if it.Quantity < 0 {
			it.Quantity = 0
		}
		if ri.Sum != nil {
			// The printed sum wins even when quantity*price disagrees:
			// receipts round, and the printed total is what was charged.
			it.Sum = *ri.Sum
		} else {
			it.Sum = it.Quantity * it.Price
		}
		if it.Sum < 0 {
			it.Sum = 0
		}
		items[i] = it
		itemsSum += it.Sum
	}

	r := &Receipt{
		Restaurant:    stringOr(raw.Restaurant, unknownPlaceholder),
		TableNumber:   stringOr(raw.TableNumber, naPlaceholder),
		OrderNumber:   stringOr(raw.OrderNumber, naPlaceholder),
		Date:          stringOr(raw.Date, naPlaceholder),
		Time:          stringOr(raw.Time, naPlaceholder),
		Waiter:        stringOr(raw.Waiter, naPlaceholder),
		Currency:      stringOr(raw.Currency, money.DefaultCode),
		Items:         items,
		Subtotal:      itemsSum,
		ServiceCharge: ServiceCharge{Name: defaultServiceName},
	}

	// The printed subtotal is authoritative when present.
	if raw.Total != nil {
		r.Subtotal = *raw.Total
	}
	if raw.VAT != nil {
		r.VAT = VAT{Rate: floatOrZero(raw.VAT.Rate), Amount: floatOrZero(raw.VAT.Amount)}
	}
	if raw.ServiceCharge != nil {
		r.ServiceCharge = ServiceCharge{
			Name:   stringOr(raw.ServiceCharge.Name, defaultServiceName),
			Amount: floatOrZero(raw.ServiceCharge.Amount),
		}
	}

	return r, nil
}

func floatOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func stringOr(v *string, fallback string) string {
	if v == nil || *v == "" {
		return fallback
	}
	return *v
}
