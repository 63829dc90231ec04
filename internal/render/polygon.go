// Package render turns figure outlines into fillable polygons and paints
// drawings offscreen. On-screen drawing lives with the ebiten game; both
// use Polygon so a figure looks the same in a window and in an export.
package render

import (
	"math"

	"github.com/example/shapeedit/internal/figure"
)

// EllipseSegments is how many edges approximate an ellipse.
const EllipseSegments = 64

// Vec2 is a polygon vertex in canvas pixels.
type Vec2 struct {
	X float32
	Y float32
}

// Polygon returns the outline as a closed polygon, without repeating the
// first vertex. Degenerate outlines yield vertices with zero area, which
// fill nothing.
func Polygon(o figure.Outline) []Vec2 {
	r := o.Rect
	switch o.Kind {
	case figure.Rectangle:
		x0, y0 := float32(r.X), float32(r.Y)
		x1, y1 := float32(r.X+r.Width), float32(r.Y+r.Height)
		return []Vec2{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}}
	case figure.Circle:
		return ellipse(r, EllipseSegments)
	case figure.Triangle:
		pts := make([]Vec2, 0, 3)
		for _, v := range o.Vertices {
			pts = append(pts, Vec2{float32(v.X), float32(v.Y)})
		}
		return pts
	}
	return nil
}

func ellipse(r figure.Rect, n int) []Vec2 {
	cx := float64(r.X) + float64(r.Width)/2
	cy := float64(r.Y) + float64(r.Height)/2
	rx := float64(r.Width) / 2
	ry := float64(r.Height) / 2
	pts := make([]Vec2, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = Vec2{
			X: float32(cx + rx*math.Cos(a)),
			Y: float32(cy + ry*math.Sin(a)),
		}
	}
	return pts
}
