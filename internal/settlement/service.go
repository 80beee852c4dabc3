package settlement

import (
	"github.com/splitcheck/splitcheck/internal/session"
)

// SessionGetter loads live splitting sessions.
type SessionGetter interface {
	Get(id string) (*session.Session, error)
}

// Service derives settlement views from splitting sessions
type Service struct {
	sessions SessionGetter
}

// NewService creates a new settlement service with dependencies injected
func NewService(sessions SessionGetter) *Service {
	return &Service{sessions: sessions}
}

// Compute builds the settlement view for a session from a consistent
// snapshot of all participants' selections. The VAT amount and grand
// total derived here are authoritative, even when the printed receipt
// disagrees.
func (s *Service) Compute(sessionID string) (*View, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}

	agg := sess.Aggregate()
	rcpt := agg.Receipt

	people := make([]PersonBill, len(agg.People))
	for i, pc := range agg.People {
		people[i] = PersonBill{
			ParticipantID: pc.Participant.ID,
			Name:          pc.Participant.DisplayName,
			Amount:        pc.Owed,
			Items:         pc.Items,
		}
	}

	return &View{
		SessionID:          sess.ID,
		Currency:           rcpt.Currency,
		Subtotal:           rcpt.Subtotal,
		VATRate:            rcpt.VAT.Rate,
		VATAmount:          rcpt.VATAmount(),
		ServiceCharge:      rcpt.ServiceCharge,
		GrandTotal:         rcpt.GrandTotal(),
		ClaimedTotal:       agg.Claimed,
		RemainingUnclaimed: agg.Unclaimed,
		People:             people,
	}, nil
}
