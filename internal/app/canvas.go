package app

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/example/shapeedit/internal/figure"
	"github.com/example/shapeedit/internal/render"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)

	selectionColor = color.RGBA{40, 120, 255, 255}
)

func init() {
	whiteImage.Fill(color.White)
}

// rebuildCanvas repaints every figure in creation order.
func (g *Game) rebuildCanvas() {
	g.canvas.Fill(render.Background)
	for _, f := range g.ctl.Figures().All() {
		drawFigure(g.canvas, f)
	}
	g.dirty = false
}

func drawFigure(dst *ebiten.Image, f *figure.Figure) {
	o := f.Outline()
	if o.Kind == figure.Rectangle {
		r := o.Rect
		vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), f.Color(), false)
		return
	}

	pts := render.Polygon(o)
	if len(pts) < 3 || o.Rect.Empty() {
		return
	}
	var path vector.Path
	path.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		path.LineTo(p.X, p.Y)
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	c := f.Color()
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(c.R) / 0xff
		vs[i].ColorG = float32(c.G) / 0xff
		vs[i].ColorB = float32(c.B) / 0xff
		vs[i].ColorA = 1
	}
	dst.DrawTriangles(vs, is, whiteSubImage, &ebiten.DrawTrianglesOptions{
		FillRule:  ebiten.EvenOdd,
		AntiAlias: true,
	})
}

// drawSelection frames the marked figure's bound.
func drawSelection(dst *ebiten.Image, f *figure.Figure, offsetY int) {
	b := f.Bound()
	vector.StrokeRect(dst, float32(b.X)-2, float32(b.Y+offsetY)-2, float32(b.Width)+4, float32(b.Height)+4, 1, selectionColor, false)
}
