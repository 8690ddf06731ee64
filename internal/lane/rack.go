package lane

import (
	"math/rand/v2"

	"arbowling/internal/engine"
)

// Pin is a simulated pin standing on the lane.
type Pin struct {
	Down   bool `json:"down"`
	Raised bool `json:"raised"`
	Moves  int  `json:"moves"` // raise and lower actions performed
}

func (p *Pin) IsDown() bool { return p.Down }
func (p *Pin) Reset()       { p.Down = false }

func (p *Pin) Raise() {
	p.Raised = true
	p.Moves++
}

func (p *Pin) Lower() {
	p.Raised = false
	p.Moves++
}

// Rack is the 10-pin triangle of one deck, ordered front to back.
type Rack struct {
	Pins []*Pin
}

func NewRack() *Rack {
	r := &Rack{Pins: make([]*Pin, engine.StrikePins)}
	for i := range r.Pins {
		r.Pins[i] = &Pin{Raised: true}
	}
	return r
}

// PinSet returns the rack as the engine sees it.
func (r *Rack) PinSet() engine.PinSet {
	set := make(engine.PinSet, len(r.Pins))
	for i, p := range r.Pins {
		set[i] = p
	}
	return set
}

// Knock knocks down the pins at the given indices. Out-of-range indices are ignored.
func (r *Rack) Knock(indices []int) int {
	n := 0
	for _, i := range indices {
		if i < 0 || i >= len(r.Pins) {
			continue
		}
		if !r.Pins[i].Down {
			r.Pins[i].Down = true
			n++
		}
	}
	return n
}

// Standing returns the indices of the pins still up.
func (r *Rack) Standing() []int {
	var out []int
	for i, p := range r.Pins {
		if !p.Down {
			out = append(out, i)
		}
	}
	return out
}

// Roll picks which standing pins a throw of the given power knocks down.
// Power is clamped to [0, 1]; full power clears the rack. The result is
// deterministic for a seeded rng.
func (r *Rack) Roll(power float64, rng *rand.Rand) []int {
	if power < 0 {
		power = 0
	}
	if power > 1 {
		power = 1
	}
	standing := r.Standing()
	n := int(power*float64(len(standing)) + 0.5)
	if power < 1 && n > 0 {
		n -= rng.IntN(2) // a little wobble short of a clean hit
	}
	rng.Shuffle(len(standing), func(i, j int) {
		standing[i], standing[j] = standing[j], standing[i]
	})
	return standing[:n]
}
