//go:build ebiten

package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"lifecanvas/internal/app"
	"lifecanvas/internal/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sim := life.NewWithConfig(cfg.Grid())
	sim.Reset(cfg.Seed)
	log.Printf("life %dx%d cells, %dpx each, every %v, seed %d", sim.Rows(), sim.Cols(), cfg.CellSize, cfg.Interval, cfg.Seed)

	game := app.New(ctx, sim, cfg)

	ebiten.SetWindowTitle("lifecanvas - " + sim.Name())
	ebiten.SetWindowSize(sim.Cols()*cfg.CellSize, sim.Rows()*cfg.CellSize)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		stop()
		log.Fatal(err)
	}
}
