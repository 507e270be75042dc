package sim

import (
	"math"
	"time"

	"gonum.org/v1/gonum/spatial/r2"
)

// Rand is the uniform random source used for velocity sampling.
// *golang.org/x/exp/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Spawner gates drag spawning to at most one spawn per Interval.
// Elapsed time accumulates only while the pointer button is held.
type Spawner struct {
	Interval time.Duration
	elapsed  time.Duration
}

// Tick advances the gate by dt and reports whether a spawn is due.
func (s *Spawner) Tick(dt time.Duration, held bool) bool {
	if !held {
		s.elapsed = 0
		return false
	}
	s.elapsed += dt
	if s.elapsed < s.Interval {
		return false
	}
	s.elapsed = 0
	return true
}

// Spawn adds a dot at pos with a random velocity and bumps the count.
func Spawn(r *Registry, s *Settings, pos r2.Vec, rng Rand) int {
	i := r.Add(Particle{
		Pos: pos,
		Vel: r2.Vec{
			X: uniform(rng, s.MinVelocity, s.MaxVelocity),
			Y: uniform(rng, s.MinVelocity, s.MaxVelocity),
		},
		Radius: s.DotRadius,
	})
	s.Count++
	return i
}

// uniform samples [lo, hi). Rounding can land exactly on hi for some inputs,
// which is pulled back below it.
func uniform(rng Rand, lo, hi float64) float64 {
	v := lo + (hi-lo)*rng.Float64()
	if v >= hi {
		v = math.Nextafter(hi, lo)
	}
	return v
}

// Clear removes every dot and resets the count.
func Clear(r *Registry, s *Settings) {
	r.Reset()
	s.Count = 0
}
