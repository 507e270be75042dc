package sim

import "gonum.org/v1/gonum/spatial/r2"

// Viewport maps window pixels into world space.
type Viewport interface {
	Size() (width, height float64)
	// ToWorld resolves a window-space point. ok is false when the point is
	// outside the window or the window has no area.
	ToWorld(x, y float64) (p r2.Vec, ok bool)
}

// CenteredViewport puts the world origin at the window centre with +y up.
type CenteredViewport struct {
	Width, Height float64
}

func (v CenteredViewport) Size() (float64, float64) { return v.Width, v.Height }

func (v CenteredViewport) ToWorld(x, y float64) (r2.Vec, bool) {
	if v.Width <= 0 || v.Height <= 0 {
		return r2.Vec{}, false
	}
	if x < 0 || y < 0 || x >= v.Width || y >= v.Height {
		return r2.Vec{}, false
	}
	return r2.Vec{X: x - v.Width/2, Y: v.Height/2 - y}, true
}

// ToScreen is the inverse of ToWorld without bounds checks.
func (v CenteredViewport) ToScreen(p r2.Vec) (x, y float64) {
	return p.X + v.Width/2, v.Height/2 - p.Y
}
