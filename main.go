package main

import (
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/example/shapeedit/internal/app"
	"github.com/example/shapeedit/internal/config"
	"github.com/example/shapeedit/internal/figure"
	"github.com/example/shapeedit/internal/prefs"
	"github.com/example/shapeedit/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("loading config", "err", err)
		os.Exit(1)
	}
	level, _ := cfg.Level()
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)

	p, err := prefs.Load(cfg.PrefsDir)
	if err != nil {
		log.Warn("ignoring preferences", "err", err)
	}

	// An optional drawing to open at start.
	var figs *figure.Collection
	if len(os.Args) > 1 {
		figs, err = store.LoadFile(os.Args[1])
		if err != nil {
			log.Error("loading drawing", "path", os.Args[1], "err", err)
			os.Exit(1)
		}
		log.Info("drawing loaded", "path", os.Args[1], "figures", figs.Len())
	}

	game := app.NewGame(cfg, p, figs, log)

	w, h := cfg.WindowWidth, cfg.WindowHeight
	if p.Window.Valid() {
		w, h = p.Window.Width, p.Window.Height
		ebiten.SetWindowPosition(p.Window.Left, p.Window.Top)
	}
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Shape Editor")
	ebiten.SetWindowResizable(true)
	ebiten.SetWindowClosingHandled(true)
	if err := ebiten.RunGame(game); err != nil {
		log.Error("game loop", "err", err)
		os.Exit(1)
	}
}
