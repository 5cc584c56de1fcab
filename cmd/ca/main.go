//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"lifecycle-ca/internal/app"
	"lifecycle-ca/internal/core"
	_ "lifecycle-ca/internal/sims/lifecycle"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	sim, err := core.Lookup(cfg.Sim, cfg.SimParams())
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(sim, cfg.Scale, cfg.Seed, cfg.HUDWidth)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("lifecycle-ca — " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
