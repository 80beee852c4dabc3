package session

import (
	"sync"
	"time"

	"github.com/splitcheck/splitcheck/internal/receipt"
	"github.com/splitcheck/splitcheck/internal/split"
)

// Participant is one diner in a splitting session.
type Participant struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

// Session binds one receipt to a group of participants splitting it.
//
// All engine access goes through the session, which serializes
// concurrent mutations: near-simultaneous taps from devices syncing
// over the network land here. Each participant's selection is an
// independent cell, so last write wins per participant.
type Session struct {
	ID        string
	ReceiptID string
	CreatedAt time.Time

	mu           sync.Mutex
	engine       *split.Engine
	participants []Participant
}

// PersonClaims is one participant's share of an Aggregate snapshot.
type PersonClaims struct {
	Participant Participant
	Owed        float64
	Items       []split.ClaimedShare
}

// ItemState is the live claim state of one line item.
type ItemState struct {
	Item          receipt.LineItem
	SplitQuantity int
	ClaimedTotal  int
}

// Aggregate is a consistent snapshot of every participant's claims,
// taken under the session lock. Settlement and share views are built
// from it rather than from separately stored state that could drift.
type Aggregate struct {
	Receipt   *receipt.Receipt
	People    []PersonClaims
	Claimed   float64 // sum of all owed amounts
	Unclaimed float64 // printed subtotal minus Claimed
}

func newSession(id string, rcpt *receipt.Receipt) *Session {
	return &Session{
		ID:        id,
		ReceiptID: rcpt.ID,
		CreatedAt: time.Now().UTC(),
		engine:    split.NewEngine(rcpt),
	}
}

// Receipt returns the immutable receipt this session splits.
func (s *Session) Receipt() *receipt.Receipt {
	return s.engine.Receipt()
}

// Join adds a participant with the given display name and an empty
// selection.
func (s *Session) Join(id, displayName string) Participant {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := Participant{ID: id, DisplayName: displayName}
	s.participants = append(s.participants, p)
	s.engine.AddParticipant(id)
	return p
}

// Participants returns the participants in join order.
func (s *Session) Participants() []Participant {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Participant, len(s.participants))
	copy(out, s.participants)
	return out
}

func (s *Session) hasParticipantLocked(id string) bool {
	for _, p := range s.participants {
		if p.ID == id {
			return true
		}
	}
	return false
}

// Increment claims one more share of the item for the participant.
func (s *Session) Increment(participantID string, position int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.hasParticipantLocked(participantID) {
		return ErrParticipantNotFound
	}
	if _, ok := s.engine.Receipt().Item(position); !ok {
		return ErrItemNotFound
	}
	s.engine.Increment(participantID, position)
	return nil
}

// Decrement releases one claimed share of the item for the participant.
func (s *Session) Decrement(participantID string, position int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.hasParticipantLocked(participantID) {
		return ErrParticipantNotFound
	}
	if _, ok := s.engine.Receipt().Item(position); !ok {
		return ErrItemNotFound
	}
	s.engine.Decrement(participantID, position)
	return nil
}

// SetSplitQuantity reconfigures how many ways the item is divided.
func (s *Session) SetSplitQuantity(position, n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.engine.SetSplitQuantity(position, n)
}

// Items returns the live claim state of every line item in print order.
func (s *Session) Items() []ItemState {
	s.mu.Lock()
	defer s.mu.Unlock()

	rcpt := s.engine.Receipt()
	out := make([]ItemState, len(rcpt.Items))
	for i, item := range rcpt.Items {
		out[i] = ItemState{
			Item:          item,
			SplitQuantity: s.engine.SplitQuantity(item.Position),
			ClaimedTotal:  s.engine.ClaimedTotal(item.Position),
		}
	}
	return out
}

// Claimed returns the participant's claimed share count for position.
func (s *Session) Claimed(participantID string, position int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.engine.Claimed(participantID, position)
}

// OwedAmount returns what the participant currently owes.
func (s *Session) OwedAmount(participantID string) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.engine.OwedAmount(participantID)
}

// Aggregate takes a consistent snapshot of all participants' claims.
func (s *Session) Aggregate() Aggregate {
	s.mu.Lock()
	defer s.mu.Unlock()

	agg := Aggregate{Receipt: s.engine.Receipt()}
	agg.People = make([]PersonClaims, len(s.participants))
	for i, p := range s.participants {
		owed := s.engine.OwedAmount(p.ID)
		agg.People[i] = PersonClaims{
			Participant: p,
			Owed:        owed,
			Items:       s.engine.ClaimedItems(p.ID),
		}
		agg.Claimed += owed
	}
	agg.Unclaimed = agg.Receipt.Subtotal - agg.Claimed
	return agg
}
