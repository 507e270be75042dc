// Package headless drives the simulation from a ticker without opening a window.
package headless

import (
	"context"
	"log"
	"time"

	"github.com/pkg/errors"

	"github.com/iburimskiy/dot-connect/internal/config"
	"github.com/iburimskiy/dot-connect/internal/sim"
)

// idleInput never presses anything and has no cursor.
type idleInput struct{}

func (idleInput) Pressed(sim.Action) bool          { return false }
func (idleInput) JustPressed(sim.Action) bool      { return false }
func (idleInput) PointerHeld() bool                { return false }
func (idleInput) Cursor() (float64, float64, bool) { return 0, 0, false }

// Run steps w at cfg.Hz until ctx is done or cfg.Ticks frames have run.
// Every frame advances by exactly 1/Hz so runs with the same seed repeat.
func Run(ctx context.Context, w *sim.World, cfg config.Config, logger *log.Logger) error {
	if cfg.Hz <= 0 {
		return errors.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	dt := time.Second / time.Duration(cfg.Hz)
	if dt <= 0 {
		return errors.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	vp := sim.CenteredViewport{Width: float64(cfg.Width), Height: float64(cfg.Height)}
	diag := sim.DiagLog{Logger: logger, Interval: cfg.LogInterval}

	t := time.NewTicker(dt)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			w.Step(dt, idleInput{}, vp)
			diag.Tick(dt, w)
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				if logger != nil {
					logger.Printf("stopped after %d ticks: %s", tick, w.Status())
				}
				return nil
			}
		}
	}
}
