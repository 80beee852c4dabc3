// Package split implements the bill splitting engine: it tracks how many
// shares of each line item every participant has claimed and derives the
// amount each participant owes.
//
// The engine is a plain in-memory structure with no locking and no I/O.
// Callers that share an engine across goroutines serialize access
// themselves (see internal/session).
package split

import (
	"errors"
	"math"

	"github.com/splitcheck/splitcheck/internal/receipt"
)

// MaxSplitQuantity caps how many equal shares a single line item can be
// divided into. A policy constant, not a law of arithmetic.
const MaxSplitQuantity = 10

// Common errors
var (
	ErrInvalidSplitQuantity = errors.New("split quantity must be an integer between 1 and 10")
	ErrUnknownPosition      = errors.New("no line item at this position")
)

// Selection maps a line item position to the number of shares one
// participant has claimed. Positions with zero claimed shares are never
// present: absence is the canonical "not selected".
type Selection map[int]int

// Engine holds the claim state of one receipt for any number of
// participants. The receipt itself is never mutated.
type Engine struct {
	rcpt       *receipt.Receipt
	items      map[int]receipt.LineItem
	shares     map[int]int          // position -> split quantity
	selections map[string]Selection // participant ID -> selection
	order      []string             // participant IDs in join order
}

// NewEngine creates an engine over a normalized receipt. Every item
// starts divided into one share per printed unit.
func NewEngine(rcpt *receipt.Receipt) *Engine {
	e := &Engine{
		rcpt:       rcpt,
		items:      make(map[int]receipt.LineItem, len(rcpt.Items)),
		shares:     make(map[int]int, len(rcpt.Items)),
		selections: make(map[string]Selection),
	}
	for _, item := range rcpt.Items {
		e.items[item.Position] = item
		e.shares[item.Position] = defaultSplitQuantity(item.Quantity)
	}
	return e
}

// defaultSplitQuantity is one share per printed unit, rounded up for
// fractional quantities, never less than one.
func defaultSplitQuantity(quantity float64) int {
	n := int(math.Ceil(quantity))
	if n < 1 {
		n = 1
	}
	return n
}

// Receipt returns the receipt this engine splits.
func (e *Engine) Receipt() *receipt.Receipt {
	return e.rcpt
}

// AddParticipant registers a participant with an empty selection.
// Re-adding an existing participant is a no-op.
func (e *Engine) AddParticipant(id string) {
	if _, ok := e.selections[id]; ok {
		return
	}
	e.selections[id] = make(Selection)
	e.order = append(e.order, id)
}

// Participants returns participant IDs in join order.
func (e *Engine) Participants() []string {
	out := make([]string, len(e.order))
	copy(out, e.order)
	return out
}

// SplitQuantity returns how many shares the item at position is divided
// into, or zero for an unknown position.
func (e *Engine) SplitQuantity(position int) int {
	return e.shares[position]
}

// Claimed returns how many shares of position the participant holds.
func (e *Engine) Claimed(participantID string, position int) int {
	return e.selections[participantID][position]
}

// ClaimedTotal returns the shares of position claimed across all
// participants.
func (e *Engine) ClaimedTotal(position int) int {
	total := 0
	for _, sel := range e.selections {
		total += sel[position]
	}
	return total
}

// Increment claims one more share of the item at position for the
// participant. It is a no-op when the item does not exist, cannot be
// claimed (printed quantity zero), or has no unclaimed shares left:
// the total claimed across participants never exceeds the item's split
// quantity.
func (e *Engine) Increment(participantID string, position int) {
	sel, ok := e.selections[participantID]
	if !ok {
		return
	}
	item, ok := e.items[position]
	if !ok || item.Quantity <= 0 {
		return
	}
	if e.ClaimedTotal(position) >= e.shares[position] {
		return
	}
	sel[position]++
}

// Decrement releases one claimed share. It is a no-op at zero, and an
// entry that reaches zero is removed from the selection entirely.
func (e *Engine) Decrement(participantID string, position int) {
	sel, ok := e.selections[participantID]
	if !ok {
		return
	}
	switch n := sel[position]; {
	case n <= 1:
		delete(sel, position)
	default:
		sel[position] = n - 1
	}
}

// SetSplitQuantity divides the item at position into n equal shares.
// Existing claims that no longer fit are clamped down, never rejected:
// each participant's claim is capped at n, then any remaining excess is
// shed from the most recently joined participants first.
func (e *Engine) SetSplitQuantity(position, n int) error {
	if n < 1 || n > MaxSplitQuantity {
		return ErrInvalidSplitQuantity
	}
	if _, ok := e.items[position]; !ok {
		return ErrUnknownPosition
	}

	e.shares[position] = n

	for _, sel := range e.selections {
		if sel[position] > n {
			sel[position] = n
		}
	}

	excess := e.ClaimedTotal(position) - n
	for i := len(e.order) - 1; i >= 0 && excess > 0; i-- {
		sel := e.selections[e.order[i]]
		drop := sel[position]
		if drop > excess {
			drop = excess
		}
		if drop > 0 {
			sel[position] -= drop
			excess -= drop
		}
	}

	for _, sel := range e.selections {
		if claimed, ok := sel[position]; ok && claimed == 0 {
			delete(sel, position)
		}
	}
	return nil
}

// SharePrice is the price of one share of the item at position: the
// printed line total divided by the split quantity. The printed sum is
// authoritative; price*quantity is never used here. Safe for zero-sum
// (comped) items since the split quantity is always at least one.
func (e *Engine) SharePrice(position int) float64 {
	item, ok := e.items[position]
	if !ok {
		return 0
	}
	return item.Sum / float64(e.shares[position])
}

// OwedAmount derives what the participant owes from their current
// selection. It is recomputed on every call; nothing is cached, so any
// read after a mutation reflects that mutation.
func (e *Engine) OwedAmount(participantID string) float64 {
	var owed float64
	for position, claimed := range e.selections[participantID] {
		owed += e.SharePrice(position) * float64(claimed)
	}
	return owed
}

// OwedTotal sums every participant's owed amount.
func (e *Engine) OwedTotal() float64 {
	var total float64
	for _, id := range e.order {
		total += e.OwedAmount(id)
	}
	return total
}

// RemainingUnclaimed is the portion of the printed subtotal no
// participant has claimed yet.
func (e *Engine) RemainingUnclaimed() float64 {
	return e.rcpt.Subtotal - e.OwedTotal()
}

// ClaimedShare describes one claimed line item at its split price.
type ClaimedShare struct {
	Position   int     `json:"position"`
	Name       string  `json:"name"`
	Shares     int     `json:"shares"`
	SharePrice float64 `json:"share_price"`
	Amount     float64 `json:"amount"`
}

// ClaimedItems lists the participant's claimed items in receipt print
// order.
func (e *Engine) ClaimedItems(participantID string) []ClaimedShare {
	sel := e.selections[participantID]
	if len(sel) == 0 {
		return nil
	}
	out := make([]ClaimedShare, 0, len(sel))
	for _, item := range e.rcpt.Items {
		claimed, ok := sel[item.Position]
		if !ok {
			continue
		}
		price := e.SharePrice(item.Position)
		out = append(out, ClaimedShare{
			Position:   item.Position,
			Name:       item.Name,
			Shares:     claimed,
			SharePrice: price,
			Amount:     price * float64(claimed),
		})
	}
	return out
}

// SelectionOf returns a copy of the participant's selection.
func (e *Engine) SelectionOf(participantID string) Selection {
	sel := e.selections[participantID]
	out := make(Selection, len(sel))
	for position, claimed := range sel {
		out[position] = claimed
	}
	return out
}
