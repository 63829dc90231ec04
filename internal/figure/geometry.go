package figure

// Point is a position in canvas pixels.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Rect is an axis-aligned rectangle given by its top-left corner and size.
type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// TopLeft returns the top-left corner.
func (r Rect) TopLeft() Point {
	return Point{X: r.X, Y: r.Y}
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains uses half-open bounds: the left and top edges are inside,
// the right and bottom edges are not.
func (r Rect) Contains(p Point) bool {
	if r.Empty() {
		return false
	}
	return p.X >= r.X && p.X < r.X+r.Width &&
		p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Outline is the drawable and hit-testable geometry derived from a bound.
// Rect holds the rectangle itself for Rectangle and the bounding box of
// the ellipse for Circle. Vertices is only set for Triangle and holds the
// apex, the base-left and the base-right corners in that order.
type Outline struct {
	Kind     Kind
	Rect     Rect
	Vertices [3]Point
}

// OutlineFor inscribes a shape of the given kind in bound. It is the only
// place that knows how each kind maps to geometry.
func OutlineFor(kind Kind, bound Rect) Outline {
	o := Outline{Kind: kind, Rect: bound}
	if kind == Triangle {
		o.Vertices = [3]Point{
			{X: bound.X + bound.Width/2, Y: bound.Y},
			{X: bound.X, Y: bound.Y + bound.Height},
			{X: bound.X + bound.Width, Y: bound.Y + bound.Height},
		}
	}
	return o
}

// Contains reports whether p lies inside the outline. Degenerate outlines
// with zero area contain nothing.
func (o Outline) Contains(p Point) bool {
	switch o.Kind {
	case Rectangle:
		return o.Rect.Contains(p)
	case Circle:
		return ellipseContains(o.Rect, p)
	case Triangle:
		return triangleContains(o.Vertices, p)
	}
	return false
}

func ellipseContains(r Rect, p Point) bool {
	if r.Empty() {
		return false
	}
	nx := float64(p.X-r.X)/float64(r.Width) - 0.5
	ny := float64(p.Y-r.Y)/float64(r.Height) - 0.5
	return nx*nx+ny*ny < 0.25
}

// triangleContains uses the same-side test: p is inside when it is on the
// same side of all three edges.
func triangleContains(v [3]Point, p Point) bool {
	if cross(v[0], v[1], v[2]) == 0 {
		return false
	}
	var positive, negative bool
	for i := range v {
		c := cross(v[i], v[(i+1)%3], p)
		if c > 0 {
			positive = true
		} else if c < 0 {
			negative = true
		}
		if positive && negative {
			return false
		}
	}
	return true
}

func cross(a, b, p Point) int64 {
	return int64(b.X-a.X)*int64(p.Y-a.Y) - int64(b.Y-a.Y)*int64(p.X-a.X)
}
