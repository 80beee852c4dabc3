package settlement

import (
	"math"
	"testing"

	"github.com/splitcheck/splitcheck/internal/receipt"
	"github.com/splitcheck/splitcheck/internal/session"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func newTestSession(t *testing.T, store *session.Store) *session.Session {
	t.Helper()
	rcpt := &receipt.Receipt{
		ID:         "r1",
		Restaurant: "Чайхана Нават",
		Currency:   "UZS",
		Items: []receipt.LineItem{
			{Position: 1, Name: "Бешбармак", Quantity: 2, Price: 7400, Sum: 14800},
			{Position: 2, Name: "Печеный батат", Quantity: 1, Price: 1600, Sum: 1600},
			{Position: 3, Name: "Торт", Quantity: 1, Price: 3800, Sum: 3800},
		},
		Subtotal:      20200,
		VAT:           receipt.VAT{Rate: 12},
		ServiceCharge: receipt.ServiceCharge{Name: "Service Charge", Amount: 0},
	}
	return store.Create(rcpt)
}

// Scenario: subtotal 33000, VAT 12%, no service charge.
func TestComputeDerivedTotals(t *testing.T) {
	store := session.NewStore()
	sess := store.Create(&receipt.Receipt{
		ID:            "r1",
		Currency:      "UZS",
		Items:         []receipt.LineItem{{Position: 1, Name: "Сет", Quantity: 1, Price: 33000, Sum: 33000}},
		Subtotal:      33000,
		VAT:           receipt.VAT{Rate: 12},
		ServiceCharge: receipt.ServiceCharge{Name: "Service Charge", Amount: 0},
	})

	svc := NewService(store)
	view, err := svc.Compute(sess.ID)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	if !almostEqual(view.VATAmount, 3960) {
		t.Errorf("VATAmount = %v, want 3960", view.VATAmount)
	}
	if !almostEqual(view.GrandTotal, 36960) {
		t.Errorf("GrandTotal = %v, want 36960", view.GrandTotal)
	}
}

func TestComputeGroupView(t *testing.T) {
	store := session.NewStore()
	sess := newTestSession(t, store)

	eduard := sess.Join("p1", "Eduard")
	igor := sess.Join("p2", "Igor")
	shawn := sess.Join("p3", "Shawn")

	// Eduard takes one portion of the beshbarmak and the sweet potato.
	if err := sess.Increment(eduard.ID, 1); err != nil {
		t.Fatal(err)
	}
	if err := sess.Increment(eduard.ID, 2); err != nil {
		t.Fatal(err)
	}
	// Igor takes the other portion.
	if err := sess.Increment(igor.ID, 1); err != nil {
		t.Fatal(err)
	}

	svc := NewService(store)
	view, err := svc.Compute(sess.ID)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	if len(view.People) != 3 {
		t.Fatalf("People = %d entries, want 3", len(view.People))
	}

	wantAmounts := map[string]float64{"Eduard": 9000, "Igor": 7400, "Shawn": 0}
	for _, p := range view.People {
		if want, ok := wantAmounts[p.Name]; !ok || !almostEqual(p.Amount, want) {
			t.Errorf("%s owes %v, want %v", p.Name, p.Amount, want)
		}
	}

	if !almostEqual(view.ClaimedTotal, 16400) {
		t.Errorf("ClaimedTotal = %v, want 16400", view.ClaimedTotal)
	}
	if !almostEqual(view.RemainingUnclaimed, 3800) {
		t.Errorf("RemainingUnclaimed = %v, want 3800", view.RemainingUnclaimed)
	}

	// Shawn claimed nothing and carries no items.
	_ = shawn
	for _, p := range view.People {
		if p.Name == "Shawn" && len(p.Items) != 0 {
			t.Errorf("Shawn has %d items, want none", len(p.Items))
		}
		if p.Name == "Eduard" && len(p.Items) != 2 {
			t.Errorf("Eduard has %d items, want 2", len(p.Items))
		}
	}
}

// The view is a projection: recomputing after a mutation reflects it.
func TestComputeReflectsMutations(t *testing.T) {
	store := session.NewStore()
	sess := newTestSession(t, store)
	p := sess.Join("p1", "You")

	svc := NewService(store)

	before, err := svc.Compute(sess.ID)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if !almostEqual(before.ClaimedTotal, 0) {
		t.Fatalf("ClaimedTotal = %v before any claim", before.ClaimedTotal)
	}

	if err := sess.Increment(p.ID, 3); err != nil {
		t.Fatal(err)
	}

	after, err := svc.Compute(sess.ID)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if !almostEqual(after.ClaimedTotal, 3800) {
		t.Errorf("ClaimedTotal = %v after claim, want 3800", after.ClaimedTotal)
	}
	if !almostEqual(after.RemainingUnclaimed, 20200-3800) {
		t.Errorf("RemainingUnclaimed = %v, want %v", after.RemainingUnclaimed, 20200-3800)
	}
}

func TestComputeUnknownSession(t *testing.T) {
	svc := NewService(session.NewStore())
	if _, err := svc.Compute("nope"); err == nil {
		t.Error("Compute on unknown session succeeded, want error")
	}
}
