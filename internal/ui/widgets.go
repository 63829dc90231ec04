// Package ui holds the in-canvas widgets: menu buttons, sliders, the
// confirm dialog and the color picker. Widgets are polled once per frame
// from the game's Update and drawn from its Draw.
package ui

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var (
	labelColor  = color.RGBA{230, 230, 230, 255}
	buttonColor = color.RGBA{70, 70, 70, 255}
	activeColor = color.RGBA{70, 100, 140, 255}
)

// Label draws s with its top-left corner at (x, y).
func Label(dst *ebiten.Image, s string, x, y int, clr color.Color) {
	face := basicfont.Face7x13
	text.Draw(dst, s, face, x, y+face.Ascent, clr)
}

// RectContainsPoint treats rect as half-open like image.Rectangle does.
func RectContainsPoint(rect image.Rectangle, p image.Point) bool {
	return p.X >= rect.Min.X && p.X < rect.Max.X && p.Y >= rect.Min.Y && p.Y < rect.Max.Y
}

func fillRect(dst *ebiten.Image, r image.Rectangle, clr color.Color) {
	vector.DrawFilledRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), clr, false)
}

// Button is a clickable labelled rectangle. Active, when set, highlights
// the button while it returns true.
type Button struct {
	Rect    image.Rectangle
	Label   string
	OnClick func()
	Active  func() bool
}

func (b *Button) Contains(x, y int) bool {
	return RectContainsPoint(b.Rect, image.Pt(x, y))
}

func (b *Button) Draw(dst *ebiten.Image) {
	clr := buttonColor
	if b.Active != nil && b.Active() {
		clr = activeColor
	}
	fillRect(dst, b.Rect, clr)
	Label(dst, b.Label, b.Rect.Min.X+6, b.Rect.Min.Y+(b.Rect.Dy()-13)/2, labelColor)
}

// Slider edits *Value between Min and Max by dragging its knob.
type Slider struct {
	X, Y   float64
	Width  float64
	Min    float64
	Max    float64
	Value  *float64
	active bool
}

const knobRadius = 10.0

func (s *Slider) knobX() float64 {
	return s.X + ((*s.Value - s.Min) / (s.Max - s.Min) * s.Width)
}

// HandleInput grabs the knob when the button goes down near it and follows
// the pointer until the button is released.
func (s *Slider) HandleInput(mx, my float64, pressed bool) {
	if !pressed {
		s.active = false
		return
	}
	if !s.active && math.Hypot(mx-s.knobX(), my-s.Y) <= knobRadius*1.5 {
		s.active = true
	}
	if s.active {
		t := (mx - s.X) / s.Width
		t = math.Max(0, math.Min(1, t))
		*s.Value = s.Min + t*(s.Max-s.Min)
	}
}

func (s *Slider) Draw(dst *ebiten.Image, label string, knob color.Color) {
	trackHeight := 6.0
	vector.DrawFilledRect(dst, float32(s.X), float32(s.Y-trackHeight/2), float32(s.Width), float32(trackHeight), color.RGBA{60, 60, 60, 255}, false)
	vector.DrawFilledCircle(dst, float32(s.knobX()), float32(s.Y), float32(knobRadius), knob, true)
	Label(dst, label, int(s.X), int(s.Y)-28, labelColor)
}

// ConfirmDialog is a modal yes/no question drawn over the canvas.
type ConfirmDialog struct {
	Message   string
	Visible   bool
	OnConfirm func()
	OnCancel  func()
}

const (
	confirmW = 400
	confirmH = 160
)

func confirmRects(viewW, viewH int) (box, yes, no image.Rectangle) {
	x := (viewW - confirmW) / 2
	y := (viewH - confirmH) / 2
	box = image.Rect(x, y, x+confirmW, y+confirmH)
	yes = image.Rect(x+40, y+90, x+140, y+130)
	no = image.Rect(x+confirmW-140, y+90, x+confirmW-40, y+130)
	return box, yes, no
}

func (c *ConfirmDialog) Draw(dst *ebiten.Image) {
	if !c.Visible {
		return
	}
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	fillRect(dst, dst.Bounds(), color.RGBA{0, 0, 0, 120})
	box, yes, no := confirmRects(w, h)
	fillRect(dst, box, color.RGBA{30, 30, 30, 255})
	Label(dst, c.Message, box.Min.X+20, box.Min.Y+30, labelColor)
	fillRect(dst, yes, color.RGBA{70, 120, 70, 255})
	fillRect(dst, no, color.RGBA{120, 70, 70, 255})
	Label(dst, "OK", yes.Min.X+40, yes.Min.Y+13, labelColor)
	Label(dst, "Cancel", no.Min.X+29, no.Min.Y+13, labelColor)
}

// HandleInput reacts to a click; clicks outside both buttons are ignored.
func (c *ConfirmDialog) HandleInput(mx, my, viewW, viewH int, clicked bool) {
	if !c.Visible || !clicked {
		return
	}
	_, yes, no := confirmRects(viewW, viewH)
	switch p := image.Pt(mx, my); {
	case RectContainsPoint(yes, p):
		c.Visible = false
		if c.OnConfirm != nil {
			c.OnConfirm()
		}
	case RectContainsPoint(no, p):
		c.Visible = false
		if c.OnCancel != nil {
			c.OnCancel()
		}
	}
}
