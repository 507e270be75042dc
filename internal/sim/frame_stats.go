package sim

import "time"

// FrameStats records the last N frame durations into a ring buffer so the
// diagnostics log and the overlay can report a smoothed frame rate.
type FrameStats struct {
	buffer    []time.Duration
	nextIndex int
	filled    int
}

func NewFrameStats(ringSize int) *FrameStats {
	if ringSize < 1 {
		ringSize = 1
	}
	return &FrameStats{buffer: make([]time.Duration, ringSize)}
}

func (f *FrameStats) Record(d time.Duration) {
	f.buffer[f.nextIndex] = d
	f.nextIndex++
	if f.nextIndex >= len(f.buffer) {
		f.nextIndex = 0
	}
	if f.filled < len(f.buffer) {
		f.filled++
	}
}

// Len is the number of recorded frames still held in the ring.
func (f *FrameStats) Len() int { return f.filled }

// Snapshot returns up to the last n frame durations, most recent last.
func (f *FrameStats) Snapshot(n int) []time.Duration {
	if n > f.filled {
		n = f.filled
	}
	out := make([]time.Duration, n)
	// Walk backwards from nextIndex - 1
	idx := f.nextIndex - 1
	for i := n - 1; i >= 0; i-- {
		if idx < 0 {
			idx = len(f.buffer) - 1
		}
		out[i] = f.buffer[idx]
		idx--
	}
	return out
}

// Mean is the average recorded frame duration, zero when nothing is recorded.
func (f *FrameStats) Mean() time.Duration {
	if f.filled == 0 {
		return 0
	}
	var sum time.Duration
	for _, d := range f.Snapshot(f.filled) {
		sum += d
	}
	return sum / time.Duration(f.filled)
}

// FPS derives frames per second from Mean.
func (f *FrameStats) FPS() float64 {
	m := f.Mean()
	if m <= 0 {
		return 0
	}
	return float64(time.Second) / float64(m)
}
