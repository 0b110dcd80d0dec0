package component

import (
	"github.com/lixenwraith/orbfolio/parameter"
)

// Label is the typewriter project name attached to an orb. Cells ("dots")
// reveal in left-to-right order at a fixed rate once the orb is opened.
// The reveal order is fixed at construction
type Label struct {
	Runes []rune // display cells, already in reveal (screen x) order

	revealed float64 // fractional reveal accumulator, monotonic until reset
	Done     bool
}

// NewLabel builds a label from the project name. An empty or missing name
// yields an empty label, not an error
func NewLabel(text string) Label {
	return Label{Runes: []rune(text)}
}

// Total returns the dot count
func (l *Label) Total() int {
	return len(l.Runes)
}

// Revealed returns how many cells are currently visible
func (l *Label) Revealed() int {
	n := int(l.revealed)
	if n > len(l.Runes) {
		n = len(l.Runes)
	}
	return n
}

// Advance moves the reveal forward. Monotonic: the count never decreases
// while animating, and Done latches until an explicit Reset
func (l *Label) Advance(dt float64) {
	if l.Done {
		return
	}
	l.revealed += parameter.LabelRevealRate * dt
	if l.revealed >= float64(len(l.Runes)) {
		l.revealed = float64(len(l.Runes))
		l.Done = true
	}
}

// Reset restarts the typewriter, used when an orb is re-opened
func (l *Label) Reset() {
	l.revealed = 0
	l.Done = false
}

// Visible returns the currently revealed prefix
func (l *Label) Visible() string {
	return string(l.Runes[:l.Revealed()])
}
