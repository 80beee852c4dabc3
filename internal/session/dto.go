package session

// CreateSessionRequest represents the request body for starting a
// splitting session over a scanned receipt.
type CreateSessionRequest struct {
	ReceiptID    string   `json:"receipt_id" validate:"required"`
	Participants []string `json:"participants,omitempty"` // display names joined immediately
}

// JoinRequest represents the request body for joining a session.
type JoinRequest struct {
	DisplayName string `json:"display_name" validate:"required"`
}

// SetSplitQuantityRequest reconfigures how many ways an item is divided.
type SetSplitQuantityRequest struct {
	SplitQuantity int `json:"split_quantity" validate:"required,min=1,max=10"`
}

// ItemStateResponse is the live claim state of one line item.
type ItemStateResponse struct {
	Position      int     `json:"position"`
	Name          string  `json:"name"`
	Quantity      float64 `json:"quantity"`
	Sum           float64 `json:"sum"`
	SplitQuantity int     `json:"split_quantity"`
	ClaimedTotal  int     `json:"claimed_total"`
	SharesLeft    int     `json:"shares_left"`
}

// SessionResponse represents the full state of a splitting session.
type SessionResponse struct {
	ID           string              `json:"id"`
	ReceiptID    string              `json:"receipt_id"`
	Currency     string              `json:"currency"`
	Participants []Participant       `json:"participants"`
	Items        []ItemStateResponse `json:"items"`
	CreatedAt    string              `json:"created_at"`
}

// ClaimResponse is returned after an increment or decrement, so the UI
// can re-render the row and the participant's running total without a
// second round trip.
type ClaimResponse struct {
	Position      int     `json:"position"`
	Claimed       int     `json:"claimed"`
	SplitQuantity int     `json:"split_quantity"`
	OwedAmount    float64 `json:"owed_amount"`
}

// ToResponse converts a session to its API representation.
func ToResponse(s *Session) *SessionResponse {
	states := s.Items()
	items := make([]ItemStateResponse, len(states))
	for i, st := range states {
		items[i] = ItemStateResponse{
			Position:      st.Item.Position,
			Name:          st.Item.Name,
			Quantity:      st.Item.Quantity,
			Sum:           st.Item.Sum,
			SplitQuantity: st.SplitQuantity,
			ClaimedTotal:  st.ClaimedTotal,
			SharesLeft:    st.SplitQuantity - st.ClaimedTotal,
		}
	}

	return &SessionResponse{
		ID:           s.ID,
		ReceiptID:    s.ReceiptID,
		Currency:     s.Receipt().Currency,
		Participants: s.Participants(),
		Items:        items,
		CreatedAt:    s.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
