// Package sim is the per-frame dot simulation: spawning, motion, edge
// reflection and the proximity links between dots.
package sim

import (
	"time"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/iburimskiy/dot-connect/internal/config"
)

// Input is everything a frame reads from the user.
type Input interface {
	Keys
	// PointerHeld reports whether the primary pointer button is down.
	PointerHeld() bool
	// Cursor returns the pointer in window pixels; ok is false when it is
	// not over the window.
	Cursor() (x, y float64, ok bool)
}

// World is the simulation context: settings, dots and per-frame scratch state.
// It is driven from a single goroutine, one Step per frame.
type World struct {
	Settings Settings

	dots    Registry
	spawner Spawner
	rng     Rand
	links   []Link
	stats   *FrameStats
	cleared bool
}

func NewWorld(s Settings, spawnInterval time.Duration, rng Rand) *World {
	return &World{
		Settings: s,
		spawner:  Spawner{Interval: spawnInterval},
		rng:      rng,
		stats:    NewFrameStats(config.FrameWindow),
	}
}

// Step runs one frame in fixed order: input, clear, spawn, integrate,
// reflect, connect. It reports whether exit was requested; the frame is
// always completed first.
func (w *World) Step(dt time.Duration, in Input, vp Viewport) (exit bool) {
	if vp == nil {
		panic("sim: step without a viewport")
	}

	exit = HandleInput(&w.Settings, in)
	w.cleared = in.JustPressed(ActionClear)
	if w.cleared {
		Clear(&w.dots, &w.Settings)
	}

	if w.spawner.Tick(dt, in.PointerHeld()) {
		w.spawnAtCursor(in, vp)
	}

	width, height := vp.Size()
	Integrate(&w.dots, &w.Settings, dt.Seconds())
	Reflect(&w.dots, width, height)

	w.links = w.links[:0]
	Connect(&w.dots, w.Settings.ConnectDistance, func(l Link) {
		w.links = append(w.links, l)
	})

	w.stats.Record(dt)
	return exit
}

func (w *World) spawnAtCursor(in Input, vp Viewport) {
	x, y, ok := in.Cursor()
	if !ok {
		return
	}
	pos, ok := vp.ToWorld(x, y)
	if !ok {
		return
	}
	Spawn(&w.dots, &w.Settings, pos, w.rng)
}

// Scatter spawns n dots at uniformly random positions inside the viewport.
func (w *World) Scatter(n int, vp Viewport) {
	width, height := vp.Size()
	for i := 0; i < n; i++ {
		pos := r2.Vec{
			X: (w.rng.Float64() - 0.5) * width,
			Y: (w.rng.Float64() - 0.5) * height,
		}
		Spawn(&w.dots, &w.Settings, pos, w.rng)
	}
}

// Each calls fn with a copy of every live dot.
func (w *World) Each(fn func(i int, p Particle)) { w.dots.Each(fn) }

// Links returns the links computed by the last Step. The slice is reused by
// the next Step and must not be retained.
func (w *World) Links() []Link { return w.links }

// Cleared reports whether the last Step ran the clear command.
func (w *World) Cleared() bool { return w.cleared }

func (w *World) Status() string { return Status(w.Settings) }

func (w *World) Stats() *FrameStats { return w.stats }
