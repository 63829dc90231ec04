package editor

import "github.com/example/shapeedit/internal/figure"

// EventType enumerates the input the editor reacts to.
type EventType int

const (
	EventSelectKind EventType = iota
	EventPointerDown
	EventPointerDrag
	EventPointerUp
	EventPointerMove
	EventWheel
	EventKeyDown
	EventKeyUp
)

// Button is a pointer button.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
)

// Key is a keyboard key. Only Shift matters to the editor.
type Key int

const (
	KeyOther Key = iota
	KeyShift
)

// Event is one input sample in canvas coordinates.
type Event struct {
	Type   EventType
	Pos    figure.Point
	Button Button
	Kind   figure.Kind // EventSelectKind
	Delta  int         // EventWheel: notches, positive grows
	Key    Key
}

func SelectKind(k figure.Kind) Event {
	return Event{Type: EventSelectKind, Kind: k}
}

func PointerDown(b Button, x, y int) Event {
	return Event{Type: EventPointerDown, Button: b, Pos: figure.Pt(x, y)}
}

func PointerDrag(x, y int) Event {
	return Event{Type: EventPointerDrag, Pos: figure.Pt(x, y)}
}

func PointerUp(b Button, x, y int) Event {
	return Event{Type: EventPointerUp, Button: b, Pos: figure.Pt(x, y)}
}

func PointerMove(x, y int) Event {
	return Event{Type: EventPointerMove, Pos: figure.Pt(x, y)}
}

func Wheel(delta, x, y int) Event {
	return Event{Type: EventWheel, Delta: delta, Pos: figure.Pt(x, y)}
}

func KeyDown(k Key) Event {
	return Event{Type: EventKeyDown, Key: k}
}

func KeyUp(k Key) Event {
	return Event{Type: EventKeyUp, Key: k}
}

// EffectType enumerates what a transition asks to have done.
type EffectType int

const (
	// Geometry effects, applied by the Controller.
	EffectCreate EffectType = iota
	EffectResize
	EffectMove
	EffectScale
	EffectSetDragOffset

	// Shell effects, returned to the caller of Controller.Dispatch.
	EffectPickColor
	EffectSetCursor
	EffectRedraw
)

// Cursor is the pointer shape the shell should show.
type Cursor int

const (
	CursorDefault Cursor = iota
	CursorCrosshair
)

// Effect is one side effect of a transition.
type Effect struct {
	Type   EffectType
	Figure figure.Handle
	Kind   figure.Kind
	Pos    figure.Point
	Lock   bool
	Delta  int
	Cursor Cursor
}

// Geometry reports whether the Controller applies e itself.
func (e Effect) Geometry() bool {
	return e.Type <= EffectSetDragOffset
}
