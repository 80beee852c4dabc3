package session

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/splitcheck/splitcheck/internal/receipt"
)

// Common errors
var (
	ErrSessionNotFound     = errors.New("session not found")
	ErrParticipantNotFound = errors.New("participant is not part of this session")
	ErrItemNotFound        = errors.New("no line item at this position")
)

// ReceiptGetter loads normalized receipts for new sessions.
type ReceiptGetter interface {
	GetByID(ctx context.Context, id string) (*receipt.Receipt, error)
}

// Service handles splitting session business logic
type Service struct {
	store    *Store
	receipts ReceiptGetter
}

// NewService creates a new session service with dependencies injected
func NewService(store *Store, receipts ReceiptGetter) *Service {
	return &Service{store: store, receipts: receipts}
}

// Create starts a session over a stored receipt, optionally joining the
// given display names right away.
func (s *Service) Create(ctx context.Context, req *CreateSessionRequest) (*Session, error) {
	rcpt, err := s.receipts.GetByID(ctx, req.ReceiptID)
	if err != nil {
		return nil, err
	}

	sess := s.store.Create(rcpt)
	for _, name := range req.Participants {
		sess.Join(uuid.New().String(), name)
	}
	return sess, nil
}

// Get returns a session by ID.
func (s *Service) Get(id string) (*Session, error) {
	return s.store.Get(id)
}

// Join adds a new participant to the session.
func (s *Service) Join(sessionID, displayName string) (Participant, error) {
	sess, err := s.store.Get(sessionID)
	if err != nil {
		return Participant{}, err
	}
	if displayName == "" {
		displayName = "Guest"
	}
	return sess.Join(uuid.New().String(), displayName), nil
}

// Increment claims one more share of an item for a participant and
// returns the resulting claim state.
func (s *Service) Increment(sessionID, participantID string, position int) (*ClaimResponse, error) {
	sess, err := s.store.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if err := sess.Increment(participantID, position); err != nil {
		return nil, err
	}
	return s.claimState(sess, participantID, position), nil
}

// Decrement releases one claimed share and returns the resulting state.
func (s *Service) Decrement(sessionID, participantID string, position int) (*ClaimResponse, error) {
	sess, err := s.store.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if err := sess.Decrement(participantID, position); err != nil {
		return nil, err
	}
	return s.claimState(sess, participantID, position), nil
}

// SetSplitQuantity reconfigures how many ways an item is divided,
// clamping any claims that no longer fit.
func (s *Service) SetSplitQuantity(sessionID string, position, n int) (*Session, error) {
	sess, err := s.store.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if err := sess.SetSplitQuantity(position, n); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *Service) claimState(sess *Session, participantID string, position int) *ClaimResponse {
	states := sess.Items()
	splitQuantity := 0
	for _, st := range states {
		if st.Item.Position == position {
			splitQuantity = st.SplitQuantity
			break
		}
	}
	return &ClaimResponse{
		Position:      position,
		Claimed:       sess.Claimed(participantID, position),
		SplitQuantity: splitQuantity,
		OwedAmount:    sess.OwedAmount(participantID),
	}
}
