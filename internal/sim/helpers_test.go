package sim

import (
	"time"

	"gonum.org/v1/gonum/spatial/r2"
)

// fakeInput is a scripted Input. Edge actions fire once and are then cleared.
type fakeInput struct {
	held    map[Action]bool
	edges   map[Action]bool
	pointer bool
	x, y    float64
	onView  bool
}

func newFakeInput() *fakeInput {
	return &fakeInput{held: map[Action]bool{}, edges: map[Action]bool{}}
}

func (f *fakeInput) Pressed(a Action) bool     { return f.held[a] }
func (f *fakeInput) JustPressed(a Action) bool { return f.edges[a] }
func (f *fakeInput) PointerHeld() bool         { return f.pointer }

func (f *fakeInput) Cursor() (float64, float64, bool) { return f.x, f.y, f.onView }

func (f *fakeInput) press(a Action) { f.edges[a] = true }

func (f *fakeInput) endFrame() {
	for a := range f.edges {
		delete(f.edges, a)
	}
}

// seqRand returns the given values in order, repeating the last one.
type seqRand struct {
	vals []float64
	i    int
}

func (s *seqRand) Float64() float64 {
	v := s.vals[s.i]
	if s.i < len(s.vals)-1 {
		s.i++
	}
	return v
}

const frame = 10 * time.Millisecond

// place adds a dot with a fixed velocity, bypassing random sampling.
func place(w *World, pos, vel r2.Vec) {
	w.dots.Add(Particle{Pos: pos, Vel: vel, Radius: w.Settings.DotRadius})
	w.Settings.Count++
}
