package sim

import "gonum.org/v1/gonum/spatial/r2"

// Particle is a single dot. Radius is fixed when the dot is created and only
// affects rendering.
type Particle struct {
	Pos    r2.Vec
	Vel    r2.Vec
	Radius float64
}

// Registry is the index-addressed set of live particles.
type Registry struct {
	dots []Particle
}

// Add appends p and returns its index.
func (r *Registry) Add(p Particle) int {
	r.dots = append(r.dots, p)
	return len(r.dots) - 1
}

func (r *Registry) Len() int { return len(r.dots) }

// At returns a copy of the particle at index i.
func (r *Registry) At(i int) Particle { return r.dots[i] }

// Each calls fn with a copy of every particle in index order.
func (r *Registry) Each(fn func(i int, p Particle)) {
	for i, p := range r.dots {
		fn(i, p)
	}
}

// Reset drops every particle, keeping the backing storage for reuse.
func (r *Registry) Reset() {
	r.dots = r.dots[:0]
}
