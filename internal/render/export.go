package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"
	"time"

	"golang.org/x/image/vector"

	"github.com/example/shapeedit/internal/figure"
)

// Background is the canvas color behind the figures.
var Background = color.RGBA{0xf0, 0xf0, 0xf0, 0xff}

// Rasterize paints figs onto dst in creation order, later figures over
// earlier ones.
func Rasterize(dst draw.Image, figs *figure.Collection) {
	b := dst.Bounds()
	if b.Empty() {
		return
	}
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	for _, f := range figs.All() {
		pts := Polygon(f.Outline())
		if len(pts) < 3 {
			continue
		}
		z.Reset(b.Dx(), b.Dy())
		ox, oy := float32(b.Min.X), float32(b.Min.Y)
		z.MoveTo(pts[0].X-ox, pts[0].Y-oy)
		for _, p := range pts[1:] {
			z.LineTo(p.X-ox, p.Y-oy)
		}
		z.ClosePath()
		z.Draw(dst, b, image.NewUniform(f.Color()), image.Point{})
	}
}

// Image returns a size.X by size.Y picture of figs on the background.
func Image(figs *figure.Collection, size image.Point) *image.RGBA {
	img := image.NewRGBA(image.Rectangle{Max: size})
	draw.Draw(img, img.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)
	Rasterize(img, figs)
	return img
}

// EncodePNG writes the picture of figs as PNG.
func EncodePNG(w io.Writer, figs *figure.Collection, size image.Point) error {
	return png.Encode(w, Image(figs, size))
}

// SavePNG writes the picture of figs to path.
func SavePNG(path string, figs *figure.Collection, size image.Point) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export png: %w", err)
	}
	if err := EncodePNG(f, figs, size); err != nil {
		f.Close()
		return fmt.Errorf("export png %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("export png %s: %w", path, err)
	}
	return nil
}

// ExportName suggests a file name for an export made at t.
func ExportName(t time.Time) string {
	return fmt.Sprintf("drawing_%s.png", t.Format("20060102_150405"))
}
