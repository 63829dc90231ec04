package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/example/shapeedit/internal/figure"
)

// ColorPicker asks for an RGB color with three sliders. OnPick receives the
// chosen color; Cancel closes without calling it.
type ColorPicker struct {
	Visible bool
	OnPick  func(figure.Color)

	r, g, b float64
	sliders [3]*Slider
}

const (
	pickerW = 420
	pickerH = 250
)

func pickerRects(viewW, viewH int) (box, swatch, ok, cancel image.Rectangle) {
	x := (viewW - pickerW) / 2
	y := (viewH - pickerH) / 2
	box = image.Rect(x, y, x+pickerW, y+pickerH)
	swatch = image.Rect(x+pickerW-90, y+30, x+pickerW-30, y+150)
	ok = image.Rect(x+40, y+190, x+140, y+230)
	cancel = image.Rect(x+pickerW-140, y+190, x+pickerW-40, y+230)
	return box, swatch, ok, cancel
}

// Open shows the picker seeded with initial.
func (p *ColorPicker) Open(initial figure.Color, onPick func(figure.Color)) {
	p.r, p.g, p.b = float64(initial.R), float64(initial.G), float64(initial.B)
	p.OnPick = onPick
	p.Visible = true
}

func (p *ColorPicker) layout(viewW, viewH int) {
	box, _, _, _ := pickerRects(viewW, viewH)
	values := [3]*float64{&p.r, &p.g, &p.b}
	for i, v := range values {
		y := float64(box.Min.Y + 50 + i*45)
		if p.sliders[i] == nil {
			p.sliders[i] = &Slider{Min: 0, Max: 255}
		}
		s := p.sliders[i]
		s.X, s.Y, s.Width, s.Value = float64(box.Min.X+30), y, 255, v
	}
}

// Color is the color currently dialled in.
func (p *ColorPicker) Color() figure.Color {
	return figure.Color{R: uint8(p.r + 0.5), G: uint8(p.g + 0.5), B: uint8(p.b + 0.5)}
}

func (p *ColorPicker) HandleInput(mx, my, viewW, viewH int, pressed, clicked bool) {
	if !p.Visible {
		return
	}
	p.layout(viewW, viewH)
	for _, s := range p.sliders {
		s.HandleInput(float64(mx), float64(my), pressed)
	}
	if !clicked {
		return
	}
	_, _, ok, cancel := pickerRects(viewW, viewH)
	switch pt := image.Pt(mx, my); {
	case RectContainsPoint(ok, pt):
		p.Visible = false
		if p.OnPick != nil {
			p.OnPick(p.Color())
		}
	case RectContainsPoint(cancel, pt):
		p.Visible = false
	}
}

func (p *ColorPicker) Draw(dst *ebiten.Image) {
	if !p.Visible {
		return
	}
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	p.layout(w, h)
	fillRect(dst, dst.Bounds(), color.RGBA{0, 0, 0, 120})
	box, swatch, ok, cancel := pickerRects(w, h)
	fillRect(dst, box, color.RGBA{30, 30, 30, 255})
	fillRect(dst, swatch, p.Color())

	knobs := [3]color.Color{
		color.RGBA{220, 60, 60, 255},
		color.RGBA{60, 200, 60, 255},
		color.RGBA{60, 90, 230, 255},
	}
	for i, name := range [3]string{"R", "G", "B"} {
		s := p.sliders[i]
		Label(dst, name, int(s.X)-20, int(s.Y)-6, labelColor)
		s.Draw(dst, "", knobs[i])
	}
	fillRect(dst, ok, color.RGBA{70, 120, 70, 255})
	fillRect(dst, cancel, color.RGBA{120, 70, 70, 255})
	Label(dst, "OK", ok.Min.X+40, ok.Min.Y+13, labelColor)
	Label(dst, "Cancel", cancel.Min.X+29, cancel.Min.Y+13, labelColor)
}
