package sim

// Integrate advances every particle by vel * speed * dt seconds.
// Nothing moves while the settings are frozen; velocities are never touched.
func Integrate(r *Registry, s *Settings, dt float64) {
	if s.Frozen {
		return
	}
	k := s.Speed * dt
	for i := range r.dots {
		p := &r.dots[i]
		p.Pos.X += p.Vel.X * k
		p.Pos.Y += p.Vel.Y * k
	}
}
