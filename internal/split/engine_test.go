package split

import (
	"errors"
	"math"
	"testing"

	"github.com/splitcheck/splitcheck/internal/receipt"
)

func testReceipt() *receipt.Receipt {
	return &receipt.Receipt{
		ID:       "r1",
		Currency: "UZS",
		Items: []receipt.LineItem{
			{Position: 1, Name: "Шашлык", Quantity: 2, Price: 4800, Sum: 9600},
			{Position: 2, Name: "Торт", Quantity: 1, Price: 3800, Sum: 3800},
			{Position: 3, Name: "Комплимент", Quantity: 3, Price: 0, Sum: 0},
			{Position: 4, Name: "Рис отварной", Quantity: 0.5, Price: 7000, Sum: 3500},
			{Position: 5, Name: "Отменено", Quantity: 0, Price: 1000, Sum: 0},
		},
		Subtotal: 16900,
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestIncrementBounds(t *testing.T) {
	e := NewEngine(testReceipt())
	e.AddParticipant("you")

	// Item 1 has two units, so two shares by default.
	for i := 0; i < 5; i++ {
		e.Increment("you", 1)
	}
	if got := e.Claimed("you", 1); got != 2 {
		t.Errorf("claimed = %d, want 2 (ceiling is the split quantity)", got)
	}

	// Unknown positions and unknown participants are silent no-ops.
	e.Increment("you", 99)
	e.Increment("stranger", 1)
	if got := e.Claimed("stranger", 1); got != 0 {
		t.Errorf("unknown participant claimed %d shares", got)
	}
}

func TestIncrementZeroQuantityItemIsNoop(t *testing.T) {
	e := NewEngine(testReceipt())
	e.AddParticipant("you")

	e.Increment("you", 5)
	if got := e.Claimed("you", 5); got != 0 {
		t.Errorf("claimed %d shares of an unclaimable item", got)
	}
}

func TestDecrementRemovesZeroEntries(t *testing.T) {
	e := NewEngine(testReceipt())
	e.AddParticipant("you")

	e.Increment("you", 1)
	e.Decrement("you", 1)

	if _, ok := e.SelectionOf("you")[1]; ok {
		t.Error("entry still present after claim dropped to zero")
	}

	// Floor no-op.
	e.Decrement("you", 1)
	if got := e.Claimed("you", 1); got != 0 {
		t.Errorf("claimed = %d after decrement at floor", got)
	}
}

func TestFractionalQuantityGetsOneShare(t *testing.T) {
	e := NewEngine(testReceipt())
	e.AddParticipant("you")

	if got := e.SplitQuantity(4); got != 1 {
		t.Fatalf("SplitQuantity = %d, want 1 for quantity 0.5", got)
	}

	e.Increment("you", 4)
	e.Increment("you", 4)
	if got := e.Claimed("you", 4); got != 1 {
		t.Errorf("claimed = %d, want 1", got)
	}
	if got := e.OwedAmount("you"); !almostEqual(got, 3500) {
		t.Errorf("OwedAmount = %v, want full printed sum 3500", got)
	}
}

// Scenario: {sum: 9600, quantity: 2}, one of two shares claimed.
func TestOwedAmountHalfOfSharedItem(t *testing.T) {
	e := NewEngine(testReceipt())
	e.AddParticipant("you")

	e.Increment("you", 1)
	if got := e.OwedAmount("you"); !almostEqual(got, 4800) {
		t.Errorf("OwedAmount = %v, want 4800", got)
	}
}

// Scenario: a cake split four ways across three participants.
func TestCakeSplitFourWays(t *testing.T) {
	e := NewEngine(testReceipt())
	for _, id := range []string{"a", "b", "c"} {
		e.AddParticipant(id)
	}

	if err := e.SetSplitQuantity(2, 4); err != nil {
		t.Fatalf("SetSplitQuantity: %v", err)
	}

	e.Increment("a", 2)
	e.Increment("b", 2)
	e.Increment("c", 2)
	e.Increment("c", 2)

	if got := e.OwedAmount("a"); !almostEqual(got, 950) {
		t.Errorf("a owes %v, want 950", got)
	}
	if got := e.OwedAmount("b"); !almostEqual(got, 950) {
		t.Errorf("b owes %v, want 950", got)
	}
	if got := e.OwedAmount("c"); !almostEqual(got, 1900) {
		t.Errorf("c owes %v, want 1900", got)
	}

	// All four shares are claimed: nothing of the item remains.
	if got := e.ClaimedTotal(2); got != 4 {
		t.Errorf("ClaimedTotal = %d, want 4", got)
	}
	e.Increment("a", 2)
	if got := e.Claimed("a", 2); got != 1 {
		t.Errorf("claim past the shared ceiling succeeded: %d", got)
	}
}

// Scenario: a comped item is fully claimable and contributes nothing.
func TestCompedItemContributesZero(t *testing.T) {
	e := NewEngine(testReceipt())
	e.AddParticipant("you")

	for i := 0; i < 3; i++ {
		e.Increment("you", 3)
	}
	if got := e.Claimed("you", 3); got != 3 {
		t.Errorf("claimed = %d, want 3", got)
	}
	if got := e.OwedAmount("you"); got != 0 {
		t.Errorf("OwedAmount = %v, want 0", got)
	}
}

func TestSetSplitQuantityValidation(t *testing.T) {
	e := NewEngine(testReceipt())

	for _, n := range []int{0, -1, MaxSplitQuantity + 1} {
		if err := e.SetSplitQuantity(1, n); !errors.Is(err, ErrInvalidSplitQuantity) {
			t.Errorf("SetSplitQuantity(1, %d) error = %v, want ErrInvalidSplitQuantity", n, err)
		}
	}
	if err := e.SetSplitQuantity(99, 2); !errors.Is(err, ErrUnknownPosition) {
		t.Errorf("SetSplitQuantity(99, 2) error = %v, want ErrUnknownPosition", err)
	}
}

func TestSetSplitQuantityClampsClaims(t *testing.T) {
	rcpt := &receipt.Receipt{
		Items:    []receipt.LineItem{{Position: 1, Name: "Плов", Quantity: 5, Price: 1000, Sum: 5000}},
		Subtotal: 5000,
	}
	e := NewEngine(rcpt)
	e.AddParticipant("you")

	for i := 0; i < 3; i++ {
		e.Increment("you", 1)
	}
	if got := e.Claimed("you", 1); got != 3 {
		t.Fatalf("claimed = %d, want 3", got)
	}

	if err := e.SetSplitQuantity(1, 2); err != nil {
		t.Fatalf("SetSplitQuantity: %v", err)
	}
	if got := e.Claimed("you", 1); got != 2 {
		t.Errorf("claimed = %d after lowering split quantity, want 2", got)
	}
}

func TestSetSplitQuantityShedsNewestClaimsFirst(t *testing.T) {
	rcpt := &receipt.Receipt{
		Items:    []receipt.LineItem{{Position: 1, Name: "Плов", Quantity: 6, Price: 1000, Sum: 6000}},
		Subtotal: 6000,
	}
	e := NewEngine(rcpt)
	e.AddParticipant("first")
	e.AddParticipant("second")

	e.Increment("first", 1)
	e.Increment("first", 1)
	e.Increment("second", 1)
	e.Increment("second", 1)

	if err := e.SetSplitQuantity(1, 3); err != nil {
		t.Fatalf("SetSplitQuantity: %v", err)
	}

	if got := e.Claimed("first", 1); got != 2 {
		t.Errorf("first claimed = %d, want 2 (earlier claims kept)", got)
	}
	if got := e.Claimed("second", 1); got != 1 {
		t.Errorf("second claimed = %d, want 1 (excess shed from newest)", got)
	}
	if got := e.ClaimedTotal(1); got != 3 {
		t.Errorf("ClaimedTotal = %d, want 3", got)
	}
}

func TestConservation(t *testing.T) {
	rcpt := &receipt.Receipt{
		Items: []receipt.LineItem{
			{Position: 1, Name: "Лагман", Quantity: 2, Price: 3000, Sum: 6000},
			{Position: 2, Name: "Чай", Quantity: 4, Price: 500, Sum: 2000},
		},
		Subtotal: 8000,
	}
	e := NewEngine(rcpt)
	e.AddParticipant("a")
	e.AddParticipant("b")

	// Claim everything between the two participants.
	e.Increment("a", 1)
	e.Increment("b", 1)
	e.Increment("a", 2)
	e.Increment("a", 2)
	e.Increment("b", 2)
	e.Increment("b", 2)

	if got := e.OwedTotal(); !almostEqual(got, rcpt.Subtotal) {
		t.Errorf("OwedTotal = %v, want subtotal %v when fully claimed", got, rcpt.Subtotal)
	}
	if got := e.RemainingUnclaimed(); !almostEqual(got, 0) {
		t.Errorf("RemainingUnclaimed = %v, want 0", got)
	}
}

// The unclaimed remainder can never go negative: the per-item ceiling
// counts claims from every participant, not each participant alone.
func TestRemainingUnclaimedNeverNegative(t *testing.T) {
	e := NewEngine(testReceipt())
	participants := []string{"a", "b", "c", "d"}
	for _, id := range participants {
		e.AddParticipant(id)
	}

	positions := []int{1, 2, 3, 4, 5}
	for round := 0; round < 20; round++ {
		for _, id := range participants {
			for _, pos := range positions {
				e.Increment(id, pos)
				if got := e.RemainingUnclaimed(); got < -1e-9 {
					t.Fatalf("RemainingUnclaimed = %v, went negative", got)
				}
			}
		}
	}

	for _, pos := range positions {
		total := e.ClaimedTotal(pos)
		if limit := e.SplitQuantity(pos); total > limit {
			t.Errorf("position %d: total claims %d exceed split quantity %d", pos, total, limit)
		}
	}
}

func TestOwedAmountRecomputedAfterEveryMutation(t *testing.T) {
	e := NewEngine(testReceipt())
	e.AddParticipant("you")

	e.Increment("you", 1)
	first := e.OwedAmount("you")
	e.Increment("you", 1)
	second := e.OwedAmount("you")
	e.Decrement("you", 1)
	third := e.OwedAmount("you")

	if !almostEqual(first, 4800) || !almostEqual(second, 9600) || !almostEqual(third, 4800) {
		t.Errorf("owed amounts after mutations = %v, %v, %v; want 4800, 9600, 4800", first, second, third)
	}
}

func TestClaimedItemsInReceiptOrder(t *testing.T) {
	e := NewEngine(testReceipt())
	e.AddParticipant("you")

	e.Increment("you", 4)
	e.Increment("you", 1)

	items := e.ClaimedItems("you")
	if len(items) != 2 {
		t.Fatalf("ClaimedItems returned %d entries, want 2", len(items))
	}
	if items[0].Position != 1 || items[1].Position != 4 {
		t.Errorf("items out of receipt order: %d, %d", items[0].Position, items[1].Position)
	}
	if !almostEqual(items[0].SharePrice, 4800) || !almostEqual(items[0].Amount, 4800) {
		t.Errorf("item 1 share price/amount = %v/%v, want 4800/4800", items[0].SharePrice, items[0].Amount)
	}
}
