package game

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/pkg/errors"
	"golang.org/x/image/font/basicfont"

	"github.com/iburimskiy/dot-connect/internal/buildinfo"
	"github.com/iburimskiy/dot-connect/internal/config"
	"github.com/iburimskiy/dot-connect/internal/sim"
)

const lineWidth = 1

// Game adapts a sim.World to ebiten.Game.
type Game struct {
	world *sim.World
	cfg   config.Config
	vp    sim.CenteredViewport
	pal   palette
	diag  sim.DiagLog
	sound *blipper
	face  *text.GoXFace

	now  func() time.Time
	last time.Time
}

func New(w *sim.World, cfg config.Config, logger *log.Logger) *Game {
	g := &Game{
		world: w,
		cfg:   cfg,
		vp:    sim.CenteredViewport{Width: float64(cfg.Width), Height: float64(cfg.Height)},
		pal:   newPalette(cfg),
		diag:  sim.DiagLog{Logger: logger, Interval: cfg.LogInterval},
		face:  text.NewGoXFace(basicfont.Face7x13),
		now:   time.Now,
	}
	if cfg.Sound {
		g.sound = newBlipper(logger)
	}
	return g
}

// Run opens the window and blocks until it closes or exit is requested.
func Run(g *Game) error {
	ebiten.SetWindowSize(g.cfg.Width, g.cfg.Height)
	ebiten.SetWindowTitle("Dot Connect (" + buildinfo.Short() + ")")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(g.cfg.TPS)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return errors.Wrap(err, "run game")
	}
	return nil
}

func (g *Game) Update() error {
	dt := g.delta()
	in := ebitenInput{width: int(g.vp.Width), height: int(g.vp.Height)}

	prev := g.world.Settings.Count
	exit := g.world.Step(dt, in, g.vp)
	g.sound.play(cueFor(g.world.Cleared(), prev, g.world.Settings.Count))
	g.diag.Tick(dt, g.world)

	if exit {
		return ebiten.Termination
	}
	return nil
}

// delta is the wall-clock time since the previous Update. The first frame
// assumes one nominal tick.
func (g *Game) delta() time.Duration {
	now := g.now()
	if g.last.IsZero() {
		g.last = now
		return time.Second / time.Duration(g.cfg.TPS)
	}
	dt := now.Sub(g.last)
	g.last = now
	if dt < 0 {
		return 0
	}
	return dt
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.pal.background)

	g.world.Each(func(_ int, p sim.Particle) {
		x, y := g.vp.ToScreen(p.Pos)
		vector.DrawFilledCircle(screen, float32(x), float32(y), float32(p.Radius), g.pal.dot, true)
	})

	for _, l := range g.world.Links() {
		x0, y0 := g.vp.ToScreen(l.A)
		x1, y1 := g.vp.ToScreen(l.B)
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), lineWidth, withAlpha(g.pal.line, l.Alpha), true)
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(config.StatusPadding, config.StatusPadding)
	op.ColorScale.ScaleWithColor(g.pal.text)
	text.Draw(screen, g.world.Status(), g.face, op)
}

// Layout tracks the window size so reflection follows resizes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.vp = sim.CenteredViewport{Width: float64(outsideWidth), Height: float64(outsideHeight)}
	return outsideWidth, outsideHeight
}
