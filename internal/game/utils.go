package game

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/dot-connect/internal/config"
)

type palette struct {
	line       colorful.Color
	dot        color.NRGBA
	text       color.NRGBA
	background color.NRGBA
}

func newPalette(cfg config.Config) palette {
	return palette{
		line:       cfg.LineColor,
		dot:        withAlpha(cfg.DotColor, 1),
		text:       withAlpha(cfg.TextColor, 1),
		background: withAlpha(cfg.Background, 1),
	}
}

// withAlpha converts c to a non-premultiplied colour with the given opacity (0-1).
func withAlpha(c colorful.Color, alpha float64) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(clamp01(alpha)*255 + 0.5)}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
