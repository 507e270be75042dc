package game

import (
	"log"
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

type cue int

const (
	cueNone cue = iota
	cueSpawn
	cueClear
)

// cueFor picks the sound for one frame. A clear wins over a spawn in the
// same frame, so prev is only compared when nothing was cleared.
func cueFor(cleared bool, prev, cur uint32) cue {
	switch {
	case cleared:
		return cueClear
	case cur > prev:
		return cueSpawn
	}
	return cueNone
}

// blipper plays short synthesized tones. A nil *blipper is silent.
type blipper struct {
	sr beep.SampleRate
}

func newBlipper(logger *log.Logger) *blipper {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/20)); err != nil {
		logger.Printf("audio disabled: %v", err)
		return nil
	}
	return &blipper{sr: sampleRate}
}

func (b *blipper) play(c cue) {
	if b == nil {
		return
	}
	switch c {
	case cueSpawn:
		b.tone(880, 25*time.Millisecond)
	case cueClear:
		b.tone(220, 120*time.Millisecond)
	}
}

func (b *blipper) tone(freq float64, d time.Duration) {
	s := beep.Take(b.sr.N(d), sine(b.sr, freq))
	speaker.Play(&effects.Volume{Streamer: s, Base: 2, Volume: -2})
}

func sine(sr beep.SampleRate, freq float64) beep.Streamer {
	var phase float64
	step := freq / float64(sr)
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			v := math.Sin(2 * math.Pi * phase)
			samples[i][0], samples[i][1] = v, v
			phase += step
			if phase >= 1 {
				phase--
			}
		}
		return len(samples), true
	})
}
