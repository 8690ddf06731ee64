package engine

// Pin is one pin of the active deck, provided by the physics collaborator.
type Pin interface {
	IsDown() bool
	// Reset clears the down flag.
	Reset()
	Raise()
	Lower()
}

// PinSet is the ordered pin collection of the active deck. A nil set is valid.
type PinSet []Pin

// DownCount returns the number of pins currently reporting down.
func (s PinSet) DownCount() int {
	n := 0
	for _, p := range s {
		if p.IsDown() {
			n++
		}
	}
	return n
}
