package sim

// Reflect keeps particles inside a width x height window centred on the origin.
// Each axis is checked on its own: a particle at or past an edge is clamped onto
// it and the matching velocity component changes sign.
func Reflect(r *Registry, width, height float64) {
	hw, hh := width/2, height/2
	for i := range r.dots {
		p := &r.dots[i]
		p.Pos.X, p.Vel.X = reflectAxis(p.Pos.X, p.Vel.X, hw)
		p.Pos.Y, p.Vel.Y = reflectAxis(p.Pos.Y, p.Vel.Y, hh)
	}
}

func reflectAxis(pos, vel, half float64) (float64, float64) {
	if pos >= half {
		return half, -vel
	} else if pos <= -half {
		return -half, -vel
	}
	return pos, vel
}
