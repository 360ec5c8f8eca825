//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"golife/internal/app"
	"golife/pkg/core"
	_ "golife/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	sim, err := core.Lookup(cfg.Sim, cfg.SimOptions())
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(sim, cfg.CellSize, cfg.HUDWidth)
	w, h := game.WindowSize()

	ebiten.SetWindowTitle(app.WindowTitle(sim.Name()))
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
