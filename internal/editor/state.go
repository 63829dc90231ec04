// Package editor turns pointer and keyboard input into figure edits. The
// rules live in Transition, a pure function from (state, event) to the next
// state plus the effects to perform; Controller owns the figures and
// carries those effects out.
package editor

import (
	"fmt"

	"github.com/example/shapeedit/internal/figure"
)

// Mode is the interaction state.
type Mode int

const (
	// Idle: nothing armed, nothing selected.
	Idle Mode = iota
	// PendingKind: a kind was picked from the menu; the next drag draws it.
	PendingKind
	// Creating: a drag is sizing a new figure.
	Creating
	// Selected: a figure is marked for move, scale or recolor.
	Selected
)

func (m Mode) String() string {
	switch m {
	case Idle:
		return "idle"
	case PendingKind:
		return "pending"
	case Creating:
		return "creating"
	case Selected:
		return "selected"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// State is everything the interaction remembers between events.
type State struct {
	Mode Mode
	// Kind is the armed kind in PendingKind and Creating.
	Kind figure.Kind
	// Figure is the figure being drawn in Creating or the marked figure in
	// Selected. It is figure.NoHandle otherwise.
	Figure figure.Handle
	// Press is where the primary button went down while a kind was armed.
	Press   figure.Point
	Pressed bool
	// Shift tracks the modifier regardless of mode.
	Shift bool
}

// Initial returns the idle state.
func Initial() State {
	return State{Mode: Idle, Figure: figure.NoHandle}
}

func (s State) idle() State {
	return State{Mode: Idle, Figure: figure.NoHandle, Shift: s.Shift}
}
