package lane_test

import (
	"math/rand/v2"
	"testing"

	"arbowling/internal/lane"
)

func TestNewRack(t *testing.T) {
	r := lane.NewRack()
	if len(r.Pins) != 10 {
		t.Fatalf("expected 10 pins, got %d", len(r.Pins))
	}
	if len(r.PinSet()) != 10 {
		t.Fatalf("expected 10 pins in set, got %d", len(r.PinSet()))
	}
	if r.PinSet().DownCount() != 0 {
		t.Fatal("new rack should have no pins down")
	}
}

func TestKnock(t *testing.T) {
	r := lane.NewRack()
	if n := r.Knock([]int{0, 3, 3, -1, 10}); n != 2 {
		t.Fatalf("knocked %d, want 2", n)
	}
	if !r.Pins[0].Down || !r.Pins[3].Down || r.Pins[1].Down {
		t.Fatal("wrong pins knocked")
	}
	if len(r.Standing()) != 8 {
		t.Fatalf("standing %d, want 8", len(r.Standing()))
	}
}

func TestPinActions(t *testing.T) {
	p := &lane.Pin{Down: true}
	p.Raise()
	p.Lower()
	p.Reset()
	if p.Down || p.Raised || p.Moves != 2 {
		t.Fatalf("unexpected pin %+v", p)
	}
}

func TestRoll(t *testing.T) {
	r := lane.NewRack()
	if got := r.Roll(1, rand.New(rand.NewPCG(1, 2))); len(got) != 10 {
		t.Fatalf("full power knocked %d, want 10", len(got))
	}
	if got := r.Roll(0, rand.New(rand.NewPCG(1, 2))); len(got) != 0 {
		t.Fatalf("zero power knocked %d, want 0", len(got))
	}

	a := r.Roll(0.6, rand.New(rand.NewPCG(7, 7)))
	b := r.Roll(0.6, rand.New(rand.NewPCG(7, 7)))
	if len(a) != len(b) {
		t.Fatalf("seeded rolls differ: %v vs %v", a, b)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("seeded rolls differ: %v vs %v", a, b)
		}
	}
	if len(a) < 5 || len(a) > 6 {
		t.Fatalf("power 0.6 knocked %d, want 5 or 6", len(a))
	}
}
