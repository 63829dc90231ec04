// Package app is the ebiten game that hosts the editor: it polls input,
// feeds it to the editor controller and performs the effects it returns.
package app

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/example/shapeedit/internal/config"
	"github.com/example/shapeedit/internal/editor"
	"github.com/example/shapeedit/internal/figure"
	"github.com/example/shapeedit/internal/prefs"
	"github.com/example/shapeedit/internal/render"
	"github.com/example/shapeedit/internal/ui"
)

const uiHeight = 40

const (
	infoText = "Shape editor\n" +
		"Draw and edit rectangles, circles and triangles."
	helpText = "Pick a figure from the menu and drag on the canvas to draw it.\n" +
		"Hold Shift while dragging to keep width and height equal.\n" +
		"Click a figure to select it, then drag to move it,\n" +
		"scroll to resize it, or right-click to change its color."
)

type Game struct {
	cfg   *config.Config
	prefs *prefs.Prefs
	log   *slog.Logger
	ctl   *editor.Controller

	canvas  *ebiten.Image
	dirty   bool
	buttons []*ui.Button
	picker  ui.ColorPicker
	confirm ui.ConfirmDialog
	status  string

	results chan func()
	busy    bool

	pressInMenu bool
	lastPos     figure.Point
	wheel       float64
}

// NewGame builds the game around figs, which may be nil for an empty drawing.
func NewGame(cfg *config.Config, p *prefs.Prefs, figs *figure.Collection, log *slog.Logger) *Game {
	g := &Game{
		cfg:     cfg,
		prefs:   p,
		log:     log,
		results: make(chan func(), 1),
		dirty:   true,
	}
	g.ctl = editor.NewController(figs,
		editor.WithLogger(log),
		editor.WithTopmostHit(cfg.Topmost()),
	)
	g.setupUI()
	return g
}

func (g *Game) setupUI() {
	kindButton := func(x int, label string, k figure.Kind) *ui.Button {
		return &ui.Button{
			Rect:    image.Rect(x, 5, x+90, uiHeight-5),
			Label:   label,
			OnClick: func() { g.perform(g.ctl.Dispatch(editor.SelectKind(k))) },
			Active: func() bool {
				s := g.ctl.State()
				return (s.Mode == editor.PendingKind || s.Mode == editor.Creating) && s.Kind == k
			},
		}
	}
	for i, k := range figure.Kinds {
		name := k.String()
		g.buttons = append(g.buttons, kindButton(10+i*95, strings.ToUpper(name[:1])+name[1:], k))
	}
	g.buttons = append(g.buttons, []*ui.Button{
		{Rect: image.Rect(320, 5, 390, uiHeight-5), Label: "Save", OnClick: g.saveDrawing},
		{Rect: image.Rect(395, 5, 465, uiHeight-5), Label: "Load", OnClick: g.loadDrawing},
		{Rect: image.Rect(470, 5, 540, uiHeight-5), Label: "Export", OnClick: g.exportDrawing},
		{Rect: image.Rect(570, 5, 630, uiHeight-5), Label: "Info", OnClick: func() { showMessage("Info", infoText) }},
		{Rect: image.Rect(635, 5, 695, uiHeight-5), Label: "Help", OnClick: func() { showMessage("Instructions", helpText) }},
	}...)
}

func confirmLoad(onConfirm func()) ui.ConfirmDialog {
	return ui.ConfirmDialog{
		Message:   "Discard the current figures and load a file?",
		Visible:   true,
		OnConfirm: onConfirm,
		OnCancel:  func() {},
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

func (g *Game) Update() error {
	g.drainResults()

	if ebiten.IsWindowBeingClosed() {
		g.saveWindow()
		return ebiten.Termination
	}

	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	clicked := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	viewW, viewH := ebiten.WindowSize()

	if g.confirm.Visible {
		g.confirm.HandleInput(mx, my, viewW, viewH, clicked)
		return nil
	}
	if g.picker.Visible {
		g.picker.HandleInput(mx, my, viewW, viewH, pressed, clicked)
		return nil
	}

	g.handleKeys()

	if clicked && my < uiHeight {
		g.pressInMenu = true
		for _, b := range g.buttons {
			if b.Contains(mx, my) {
				b.OnClick()
				break
			}
		}
		return nil
	}
	if g.pressInMenu {
		if !pressed {
			g.pressInMenu = false
		}
		return nil
	}

	g.handlePointer(mx, my-uiHeight)
	return nil
}

func (g *Game) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyShift) {
		g.perform(g.ctl.Dispatch(editor.KeyDown(editor.KeyShift)))
	}
	if inpututil.IsKeyJustReleased(ebiten.KeyShift) {
		g.perform(g.ctl.Dispatch(editor.KeyUp(editor.KeyShift)))
	}
}

// handlePointer converts the frame's mouse state into editor events. x, y
// are canvas coordinates.
func (g *Game) handlePointer(x, y int) {
	buttons := []struct {
		eb ebiten.MouseButton
		b  editor.Button
	}{
		{ebiten.MouseButtonLeft, editor.ButtonPrimary},
		{ebiten.MouseButtonRight, editor.ButtonSecondary},
	}
	for _, b := range buttons {
		if inpututil.IsMouseButtonJustPressed(b.eb) {
			g.perform(g.ctl.Dispatch(editor.PointerDown(b.b, x, y)))
		}
	}

	if pos := figure.Pt(x, y); pos != g.lastPos {
		g.lastPos = pos
		if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
			g.perform(g.ctl.Dispatch(editor.PointerDrag(x, y)))
		} else {
			g.perform(g.ctl.Dispatch(editor.PointerMove(x, y)))
		}
	}

	for _, b := range buttons {
		if inpututil.IsMouseButtonJustReleased(b.eb) {
			g.perform(g.ctl.Dispatch(editor.PointerUp(b.b, x, y)))
		}
	}

	// Whole notches only; scrolling down grows the figure.
	_, dy := ebiten.Wheel()
	g.wheel += dy
	if notches := int(g.wheel); notches != 0 {
		g.wheel -= float64(notches)
		g.perform(g.ctl.Dispatch(editor.Wheel(-notches, x, y)))
	}
}

// perform carries out the effects the controller left for the shell.
func (g *Game) perform(effects []editor.Effect) {
	for _, e := range effects {
		switch e.Type {
		case editor.EffectRedraw:
			g.dirty = true
		case editor.EffectSetCursor:
			shape := ebiten.CursorShapeDefault
			if e.Cursor == editor.CursorCrosshair {
				shape = ebiten.CursorShapeCrosshair
			}
			ebiten.SetCursorShape(shape)
		case editor.EffectPickColor:
			g.pickColor(e.Figure)
		}
	}
}

func (g *Game) pickColor(h figure.Handle) {
	f := g.ctl.Figures().Get(h)
	if f == nil {
		return
	}
	g.picker.Open(f.Color(), func(c figure.Color) {
		if g.ctl.SetColor(h, c) {
			g.dirty = true
		}
	})
}

func (g *Game) saveWindow() {
	if g.prefs == nil {
		return
	}
	x, y := ebiten.WindowPosition()
	w, h := ebiten.WindowSize()
	g.prefs.Window = prefs.Window{Left: x, Top: y, Width: w, Height: h}
	if err := g.prefs.Save(); err != nil {
		g.log.Warn("saving window geometry failed", slog.Any("err", err))
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if ch := max(h-uiHeight, 1); g.canvas == nil || g.canvas.Bounds().Dx() != w || g.canvas.Bounds().Dy() != ch {
		g.canvas = ebiten.NewImage(max(w, 1), ch)
		g.dirty = true
	}
	if g.dirty {
		g.rebuildCanvas()
	}

	screen.Fill(render.Background)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, uiHeight)
	screen.DrawImage(g.canvas, op)
	if _, f, ok := g.ctl.Selected(); ok {
		drawSelection(screen, f, uiHeight)
	}

	vector.DrawFilledRect(screen, 0, 0, float32(w), uiHeight, color.RGBA{20, 20, 20, 255}, false)
	for _, b := range g.buttons {
		b.Draw(screen)
	}
	ebitenutil.DebugPrintAt(screen, g.statusLine(), 720, 12)

	g.confirm.Draw(screen)
	g.picker.Draw(screen)
}

func (g *Game) statusLine() string {
	s := g.ctl.State()
	line := fmt.Sprintf("figures: %d  mode: %s", g.ctl.Figures().Len(), s.Mode)
	switch s.Mode {
	case editor.PendingKind, editor.Creating:
		line += " " + s.Kind.String()
	case editor.Selected:
		if f := g.ctl.Figures().Get(s.Figure); f != nil {
			line += " " + f.Kind().String()
		}
	}
	if g.status != "" {
		line += "  | " + g.status
	}
	return line
}
