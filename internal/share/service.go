package share

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/splitcheck/splitcheck/internal/session"
	"github.com/splitcheck/splitcheck/pkg/money"
)

// SessionGetter loads live splitting sessions.
type SessionGetter interface {
	Get(id string) (*session.Session, error)
}

// Service builds shareable text summaries of a bill
type Service struct {
	sessions SessionGetter
}

// NewService creates a new share service with dependencies injected
func NewService(sessions SessionGetter) *Service {
	return &Service{sessions: sessions}
}

// Summary renders the bill as plain text for the platform share sheet:
// restaurant metadata, every line item, and the subtotal, service
// charge, VAT and total lines. Amounts go through the money formatter
// so the text matches what the screens show.
func (s *Service) Summary(sessionID string) (string, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return "", err
	}

	rcpt := sess.Receipt()
	code := rcpt.Currency

	var b strings.Builder
	fmt.Fprintf(&b, "Restaurant: %s\n", rcpt.Restaurant)
	fmt.Fprintf(&b, "Table: %s\n", rcpt.TableNumber)
	fmt.Fprintf(&b, "Order: %s\n", rcpt.OrderNumber)
	fmt.Fprintf(&b, "Date: %s\n", rcpt.Date)
	fmt.Fprintf(&b, "Time: %s\n", rcpt.Time)
	fmt.Fprintf(&b, "Waiter: %s\n", rcpt.Waiter)

	b.WriteString("\nItems:\n")
	for _, item := range rcpt.Items {
		quantity := strconv.FormatFloat(item.Quantity, 'f', -1, 64)
		fmt.Fprintf(&b, "%s x%s - %s\n", item.Name, quantity, money.Format(item.Sum, code))
	}

	fmt.Fprintf(&b, "\nSubtotal: %s\n", money.Format(rcpt.Subtotal, code))
	fmt.Fprintf(&b, "%s: %s\n", rcpt.ServiceCharge.Name, money.Format(rcpt.ServiceCharge.Amount, code))
	fmt.Fprintf(&b, "VAT (%s%%): %s\n", strconv.FormatFloat(rcpt.VAT.Rate, 'f', -1, 64), money.Format(rcpt.VATAmount(), code))
	fmt.Fprintf(&b, "Total: %s\n", money.Format(rcpt.GrandTotal(), code))

	return b.String(), nil
}
