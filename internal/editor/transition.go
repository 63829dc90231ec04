package editor

import "github.com/example/shapeedit/internal/figure"

// Scene is the read-only view of the figures a transition needs.
type Scene interface {
	// HitTest returns the figure under p.
	HitTest(p figure.Point) (figure.Handle, bool)
	// Contains reports whether p is inside the outline of h.
	Contains(h figure.Handle, p figure.Point) bool
	// Next is the handle the next created figure will get.
	Next() figure.Handle
}

var redraw = Effect{Type: EffectRedraw}

// Transition computes the next state and the effects for ev. It does not
// touch any figure.
func Transition(s State, ev Event, sc Scene) (State, []Effect) {
	switch ev.Type {
	case EventSelectKind:
		next := s.idle()
		next.Mode = PendingKind
		next.Kind = ev.Kind
		return next, []Effect{{Type: EffectSetCursor, Cursor: CursorCrosshair}, redraw}

	case EventPointerDown:
		return pointerDown(s, ev, sc)

	case EventPointerDrag:
		return pointerDrag(s, ev, sc)

	case EventPointerUp:
		if s.Mode == Creating || s.Mode == PendingKind {
			return s.idle(), []Effect{{Type: EffectSetCursor, Cursor: CursorDefault}, redraw}
		}
		return s, nil

	case EventPointerMove:
		c := CursorDefault
		if s.Mode == PendingKind || s.Mode == Creating {
			c = CursorCrosshair
		}
		return s, []Effect{{Type: EffectSetCursor, Cursor: c}}

	case EventWheel:
		if s.Mode == Selected && ev.Delta != 0 && sc.Contains(s.Figure, ev.Pos) {
			return s, []Effect{{Type: EffectScale, Figure: s.Figure, Delta: ev.Delta}, redraw}
		}
		return s, nil

	case EventKeyDown, EventKeyUp:
		if ev.Key == KeyShift {
			s.Shift = ev.Type == EventKeyDown
		}
		return s, nil
	}
	return s, nil
}

func pointerDown(s State, ev Event, sc Scene) (State, []Effect) {
	switch ev.Button {
	case ButtonPrimary:
		if s.Mode == PendingKind {
			s.Press = ev.Pos
			s.Pressed = true
			return s, nil
		}
		if s.Mode == Creating {
			return s, nil
		}
		h, ok := sc.HitTest(ev.Pos)
		if !ok {
			if s.Mode == Selected {
				return s.idle(), []Effect{redraw}
			}
			return s.idle(), nil
		}
		next := s.idle()
		next.Mode = Selected
		next.Figure = h
		return next, []Effect{{Type: EffectSetDragOffset, Figure: h, Pos: ev.Pos}, redraw}

	case ButtonSecondary:
		if s.Mode == Selected && sc.Contains(s.Figure, ev.Pos) {
			return s, []Effect{{Type: EffectPickColor, Figure: s.Figure, Pos: ev.Pos}}
		}
	}
	return s, nil
}

func pointerDrag(s State, ev Event, sc Scene) (State, []Effect) {
	switch s.Mode {
	case PendingKind:
		at := ev.Pos
		if s.Pressed {
			at = s.Press
		}
		h := sc.Next()
		next := s
		next.Mode = Creating
		next.Figure = h
		next.Pressed = false
		return next, []Effect{{Type: EffectCreate, Figure: h, Kind: s.Kind, Pos: at}, redraw}

	case Creating:
		return s, []Effect{{Type: EffectResize, Figure: s.Figure, Pos: ev.Pos, Lock: s.Shift}, redraw}

	case Selected:
		if sc.Contains(s.Figure, ev.Pos) {
			return s, []Effect{{Type: EffectMove, Figure: s.Figure, Pos: ev.Pos}, redraw}
		}
	}
	return s, nil
}
