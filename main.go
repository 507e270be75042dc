package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/ncruces/zenity"
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"

	"github.com/iburimskiy/dot-connect/internal/buildinfo"
	"github.com/iburimskiy/dot-connect/internal/config"
	"github.com/iburimskiy/dot-connect/internal/game"
	"github.com/iburimskiy/dot-connect/internal/headless"
	"github.com/iburimskiy/dot-connect/internal/sim"
)

func main() {
	cfg, err := config.Parse(os.Args[0], os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		if errors.Is(err, config.ErrInvalid) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(2)
	}

	logger := log.New(os.Stderr, "dot-connect: ", log.LstdFlags)

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	logger.Printf("starting %s seed=%d size=%dx%d", buildinfo.Short(), seed, cfg.Width, cfg.Height)

	world := sim.NewWorld(sim.SettingsFrom(cfg), cfg.SpawnInterval, rand.New(rand.NewSource(seed)))
	world.Scatter(cfg.InitialDots, sim.CenteredViewport{Width: float64(cfg.Width), Height: float64(cfg.Height)})

	if cfg.Headless {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := headless.Run(ctx, world, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
			logger.Print(err)
			stop()
			os.Exit(1)
		}
		return
	}

	if err := game.Run(game.New(world, cfg, logger)); err != nil {
		logger.Print(err)
		_ = zenity.Error(err.Error(), zenity.Title("Dot Connect"), zenity.ErrorIcon)
		os.Exit(1)
	}
}
