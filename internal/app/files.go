package app

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"time"

	"github.com/sqweek/dialog"

	"github.com/example/shapeedit/internal/figure"
	"github.com/example/shapeedit/internal/render"
	"github.com/example/shapeedit/internal/store"
)

const (
	drawingExt  = "shapes"
	drawingDesc = "Shape drawings"
)

// Native dialogs block, so they run on their own goroutine. Whatever they
// produce is handed back through g.results and applied by the next Update,
// which keeps every figure access on the UI goroutine.
func (g *Game) async(work func() func()) {
	if g.busy {
		return
	}
	g.busy = true
	go func() {
		g.results <- work()
	}()
}

func (g *Game) drainResults() {
	for {
		select {
		case apply := <-g.results:
			g.busy = false
			if apply != nil {
				apply()
			}
		default:
			return
		}
	}
}

func (g *Game) saveDrawing() {
	g.async(func() func() {
		path, err := dialog.File().Filter(drawingDesc, drawingExt).Title("Save").SetStartDir(g.cfg.Dir).Save()
		if errors.Is(err, dialog.ErrCancelled) {
			return nil
		}
		if err != nil {
			return func() { g.reportError("Save", err) }
		}
		return func() {
			if err := store.SaveFile(path, g.ctl.Figures()); err != nil {
				g.reportError("Save", err)
				return
			}
			g.log.Info("drawing saved", "path", path, "figures", g.ctl.Figures().Len())
			g.status = "saved " + path
		}
	})
}

// loadDrawing asks before discarding a non-empty drawing.
func (g *Game) loadDrawing() {
	if g.ctl.Figures().Len() == 0 {
		g.chooseAndLoad()
		return
	}
	g.confirm = confirmLoad(g.chooseAndLoad)
}

func (g *Game) chooseAndLoad() {
	g.async(func() func() {
		path, err := dialog.File().Filter(drawingDesc, drawingExt).Title("Load").SetStartDir(g.cfg.Dir).Load()
		if errors.Is(err, dialog.ErrCancelled) {
			return nil
		}
		if err != nil {
			return func() { g.reportError("Load", err) }
		}
		figs, err := store.LoadFile(path)
		return func() { g.finishLoad(path, figs, err) }
	})
}

// finishLoad replaces the drawing only when the whole file decoded.
func (g *Game) finishLoad(path string, figs *figure.Collection, err error) {
	if err != nil {
		g.reportError("Load", err)
		return
	}
	g.ctl.Replace(figs)
	g.dirty = true
	g.log.Info("drawing loaded", "path", path, "figures", figs.Len())
	g.status = "loaded " + path
}

func (g *Game) exportDrawing() {
	size := image.Pt(g.canvas.Bounds().Dx(), g.canvas.Bounds().Dy())
	g.async(func() func() {
		path, err := dialog.File().Filter("PNG image", "png").Title("Export").
			SetStartDir(g.cfg.Dir).SetStartFile(render.ExportName(time.Now())).Save()
		if errors.Is(err, dialog.ErrCancelled) {
			return nil
		}
		if err != nil {
			return func() { g.reportError("Export", err) }
		}
		return func() {
			if err := render.SavePNG(path, g.ctl.Figures(), size); err != nil {
				g.reportError("Export", err)
				return
			}
			g.log.Info("drawing exported", "path", path)
			g.status = "exported " + path
		}
	})
}

func (g *Game) reportError(op string, err error) {
	var de *store.DecodeError
	var ioe *store.IOError
	msg := err.Error()
	switch {
	case errors.As(err, &de):
		msg = fmt.Sprintf("The file is damaged (record %d): %v", de.Index+1, de.Err)
	case errors.As(err, &ioe):
		msg = fmt.Sprintf("Cannot access %s: %v", ioe.Path, ioe.Err)
	}
	g.log.Error(op+" failed", slog.Any("err", err))
	g.status = op + " failed"
	go dialog.Message("%s", msg).Title(op + " failed").Error()
}

func showMessage(title, msg string) {
	go dialog.Message("%s", msg).Title(title).Info()
}
