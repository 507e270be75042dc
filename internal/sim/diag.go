package sim

import (
	"log"
	"time"
)

// DiagLog periodically writes simulation diagnostics. A zero Interval or a
// nil Logger disables it.
type DiagLog struct {
	Logger   *log.Logger
	Interval time.Duration

	elapsed time.Duration
}

// Tick accumulates dt and logs once the interval has passed. It reports
// whether a line was written.
func (d *DiagLog) Tick(dt time.Duration, w *World) bool {
	if d.Logger == nil || d.Interval <= 0 {
		return false
	}
	d.elapsed += dt
	if d.elapsed < d.Interval {
		return false
	}
	d.elapsed = 0

	stats := w.Stats()
	d.Logger.Printf("dots=%d links=%d fps=%.1f frame=%.2fms frozen=%t",
		w.Settings.Count, len(w.Links()), stats.FPS(),
		float64(stats.Mean())/float64(time.Millisecond), w.Settings.Frozen)
	return true
}
