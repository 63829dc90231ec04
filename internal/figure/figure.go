// Package figure holds the geometric model of the editor: a figure is a
// bounding rectangle plus an outline that is always recomputed from it.
package figure

// Figure is a single shape on the canvas. The bound is authoritative; the
// outline is rebuilt from it after every mutation.
type Figure struct {
	kind    Kind
	bound   Rect
	outline Outline
	anchor  Point
	offset  Point
	color   Color
}

// New creates a zero-area figure at (x, y). The point is kept as the anchor
// that later resize calls grow away from.
func New(kind Kind, x, y int) *Figure {
	f := &Figure{
		kind:   kind,
		bound:  Rect{X: x, Y: y},
		anchor: Point{X: x, Y: y},
		color:  Black,
	}
	f.merge()
	return f
}

// Restore rebuilds a finished figure from persisted state. The anchor is
// the top-left corner of the bound.
func Restore(kind Kind, bound Rect, c Color) *Figure {
	f := &Figure{
		kind:   kind,
		bound:  bound,
		anchor: bound.TopLeft(),
		color:  c,
	}
	f.merge()
	return f
}

func (f *Figure) Kind() Kind       { return f.kind }
func (f *Figure) Bound() Rect      { return f.bound }
func (f *Figure) Outline() Outline { return f.outline }
func (f *Figure) Anchor() Point    { return f.anchor }
func (f *Figure) Color() Color     { return f.color }

// DragOffset returns the pointer-to-corner vector captured by SetDragOffset.
func (f *Figure) DragOffset() Point { return f.offset }

func (f *Figure) SetColor(c Color) { f.color = c }

// Contains reports whether p is inside the figure's outline.
func (f *Figure) Contains(p Point) bool {
	return f.outline.Contains(p)
}

// Resize stretches the bound between the anchor and (px, py). With
// lockAspect both sides are clamped to the shorter one. Only meant to be
// used while the figure is being drawn.
func (f *Figure) Resize(px, py int, lockAspect bool) {
	w := abs(f.anchor.X - px)
	h := abs(f.anchor.Y - py)
	if lockAspect {
		side := min(w, h)
		w, h = side, side
	}

	x := f.anchor.X
	if px < f.anchor.X {
		x = f.anchor.X - w
	}
	y := f.anchor.Y
	if py < f.anchor.Y {
		y = f.anchor.Y - h
	}

	f.bound = Rect{X: x, Y: y, Width: w, Height: h}
	f.merge()
}

// Scale changes both sides by 10% per unit of percent, keeping the
// top-left corner in place. Sizes never go below zero.
func (f *Figure) Scale(percent int) {
	f.bound.Width = scaleSide(f.bound.Width, percent)
	f.bound.Height = scaleSide(f.bound.Height, percent)
	f.merge()
}

func scaleSide(side, percent int) int {
	n := int(float64(side) + float64(percent)*float64(side)/10)
	if n < 0 {
		return 0
	}
	return n
}

// SetDragOffset records where inside the bound the pointer grabbed the
// figure. Call it once when the figure is selected, before Move.
func (f *Figure) SetDragOffset(px, py int) {
	f.offset = Point{X: px - f.bound.X, Y: py - f.bound.Y}
}

// Move places the bound so the grab point stays under the pointer.
func (f *Figure) Move(px, py int) {
	f.bound.X = px - f.offset.X
	f.bound.Y = py - f.offset.Y
	f.merge()
}

func (f *Figure) merge() {
	f.outline = OutlineFor(f.kind, f.bound)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
