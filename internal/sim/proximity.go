package sim

import "gonum.org/v1/gonum/spatial/r2"

// Link is a request to draw a line between two dots.
type Link struct {
	A, B  r2.Vec
	Alpha float64
}

// Connect tests every unordered pair of particles once and emits a Link for each
// pair closer than maxDist. Alpha falls linearly from 1 at distance 0 towards 0
// at maxDist; pairs at or beyond maxDist are skipped, so a non-positive maxDist
// connects nothing. It returns the number of links emitted.
//
// All pairs are checked every call; there is no spatial index.
func Connect(r *Registry, maxDist float64, emit func(Link)) int {
	if maxDist <= 0 {
		return 0
	}
	n := 0
	for i := 0; i < len(r.dots); i++ {
		a := r.dots[i].Pos
		for j := i + 1; j < len(r.dots); j++ {
			b := r.dots[j].Pos
			d := r2.Norm(r2.Sub(b, a))
			if d >= maxDist {
				continue
			}
			emit(Link{A: a, B: b, Alpha: 1 - d/maxDist})
			n++
		}
	}
	return n
}
