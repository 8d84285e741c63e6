//go:build ebiten

// Command lifegui shows a cellular automaton description in a window.
package main

import (
	"errors"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/juju/gnuflag"
	"github.com/juju/loggo"

	"lifeca/internal/app"
)

func main() {
	log.SetFlags(0)
	cfg, args, err := app.ParseArgs("lifegui", os.Args[1:], os.Stderr)
	if err == gnuflag.ErrHelp {
		os.Exit(0)
	}
	if err != nil {
		os.Exit(2)
	}
	if err := loggo.ConfigureLoggers(cfg.Log); err != nil {
		log.Fatalf("lifegui: %v", err)
	}
	if len(args) > 1 {
		log.Fatalf("lifegui: too many arguments: %q", args[1:])
	}
	path := ""
	if len(args) == 1 {
		path = args[0]
	}

	w, err := app.LoadWorld(path, os.Stdin, cfg)
	if err != nil {
		log.Fatalf("lifegui: %v", err)
	}
	w.Simulate(cfg.Generations)

	ctrl := app.NewController(w, cfg)
	game := app.New(ctrl, cfg.Control)
	width, height := game.Layout(0, 0)

	ebiten.SetWindowTitle("lifeca - " + w.Name())
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
