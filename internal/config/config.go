package config

import (
	"flag"
	"io"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

const (
	WindowWidth  = 1280
	WindowHeight = 720
	TPS          = 60

	// Simulation defaults
	DotSize         = 6.0
	ConnectDistance = 300.0
	Speed           = 1.0
	MinVelocity     = -600.0
	MaxVelocity     = 600.0
	SpawnInterval   = 70 * time.Millisecond

	// Per-frame adjustments while a key is held
	ConnectStep = 2.0
	SpeedStep   = 0.04

	// Status line
	StatusPadding = 6

	// Palette
	LineColor       = "#ED82ED"
	DotColor        = "#EE82EE"
	TextColor       = "#FAEBD7"
	BackgroundColor = "#666666"

	// Headless runner
	HeadlessHz  = 60
	LogInterval = time.Second
	FrameWindow = 120
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config holds the startup options of a run.
type Config struct {
	Width  int
	Height int
	TPS    int

	DotSize         float64
	ConnectDistance float64
	Speed           float64
	MinVelocity     float64
	MaxVelocity     float64
	SpawnInterval   time.Duration

	InitialDots int
	Seed        uint64
	Sound       bool

	Headless    bool
	Hz          int
	Ticks       uint64
	LogInterval time.Duration

	LineColor  colorful.Color
	DotColor   colorful.Color
	TextColor  colorful.Color
	Background colorful.Color
}

// Default returns the documented defaults.
func Default() Config {
	return Config{
		Width:           WindowWidth,
		Height:          WindowHeight,
		TPS:             TPS,
		DotSize:         DotSize,
		ConnectDistance: ConnectDistance,
		Speed:           Speed,
		MinVelocity:     MinVelocity,
		MaxVelocity:     MaxVelocity,
		SpawnInterval:   SpawnInterval,
		Hz:              HeadlessHz,
		LogInterval:     LogInterval,
		LineColor:       mustHex(LineColor),
		DotColor:        mustHex(DotColor),
		TextColor:       mustHex(TextColor),
		Background:      mustHex(BackgroundColor),
	}
}

// Parse reads flags from args on top of Default and validates the result.
// Usage and flag errors are written to out. -h returns flag.ErrHelp.
func Parse(name string, args []string, out io.Writer) (Config, error) {
	cfg := Default()

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(out)

	fs.IntVar(&cfg.Width, "width", cfg.Width, "Window width in pixels.")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "Window height in pixels.")
	fs.IntVar(&cfg.TPS, "tps", cfg.TPS, "Simulation ticks per second in window mode.")
	fs.Float64Var(&cfg.DotSize, "dot-size", cfg.DotSize, "Radius of newly spawned dots.")
	fs.Float64Var(&cfg.ConnectDistance, "connect", cfg.ConnectDistance, "Initial connect distance.")
	fs.Float64Var(&cfg.Speed, "speed", cfg.Speed, "Initial speed multiplier.")
	fs.Float64Var(&cfg.MinVelocity, "min-vel", cfg.MinVelocity, "Lower bound of spawned velocity components.")
	fs.Float64Var(&cfg.MaxVelocity, "max-vel", cfg.MaxVelocity, "Upper bound (exclusive) of spawned velocity components.")
	fs.DurationVar(&cfg.SpawnInterval, "spawn-interval", cfg.SpawnInterval, "Minimum time between drag spawns.")
	fs.IntVar(&cfg.InitialDots, "dots", cfg.InitialDots, "Dots scattered across the window at startup.")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed (0 = seed from the clock).")
	fs.BoolVar(&cfg.Sound, "sound", cfg.Sound, "Play a blip on spawn and clear.")
	fs.BoolVar(&cfg.Headless, "headless", cfg.Headless, "Run without a window.")
	fs.IntVar(&cfg.Hz, "hz", cfg.Hz, "Tick rate in headless mode.")
	fs.Uint64Var(&cfg.Ticks, "ticks", cfg.Ticks, "Stop after N ticks in headless mode (0 = run forever).")
	fs.DurationVar(&cfg.LogInterval, "log-interval", cfg.LogInterval, "Diagnostics log interval (0 disables).")
	fs.Var((*hexColor)(&cfg.LineColor), "line-color", "Connection line colour.")
	fs.Var((*hexColor)(&cfg.DotColor), "dot-color", "Dot colour.")
	fs.Var((*hexColor)(&cfg.TextColor), "text-color", "Status text colour.")
	fs.Var((*hexColor)(&cfg.Background), "background", "Background colour.")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() > 0 {
		return cfg, errors.Wrapf(ErrInvalid, "unexpected arguments: %v", fs.Args())
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the options that the simulation cannot run without.
// Connect distance and speed are left unbounded on purpose.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Wrapf(ErrInvalid, "window size must be positive, got %dx%d", c.Width, c.Height)
	case c.TPS <= 0:
		return errors.Wrapf(ErrInvalid, "tps must be positive, got %d", c.TPS)
	case c.DotSize <= 0:
		return errors.Wrapf(ErrInvalid, "dot size must be positive, got %g", c.DotSize)
	case c.MinVelocity >= c.MaxVelocity:
		return errors.Wrapf(ErrInvalid, "velocity range [%g, %g) is empty", c.MinVelocity, c.MaxVelocity)
	case c.SpawnInterval <= 0:
		return errors.Wrapf(ErrInvalid, "spawn interval must be positive, got %v", c.SpawnInterval)
	case c.InitialDots < 0:
		return errors.Wrapf(ErrInvalid, "initial dots must not be negative, got %d", c.InitialDots)
	case c.Hz <= 0:
		return errors.Wrapf(ErrInvalid, "headless hz must be positive, got %d", c.Hz)
	case c.LogInterval < 0:
		return errors.Wrapf(ErrInvalid, "log interval must not be negative, got %v", c.LogInterval)
	}
	return nil
}

// hexColor adapts a colorful.Color to flag.Value.
type hexColor colorful.Color

func (h *hexColor) String() string {
	if h == nil {
		return ""
	}
	return colorful.Color(*h).Hex()
}

func (h *hexColor) Set(s string) error {
	c, err := colorful.Hex(s)
	if err != nil {
		return errors.Wrapf(ErrInvalid, "colour %q", s)
	}
	*h = hexColor(c)
	return nil
}

// mustHex parses one of the palette constants above.
func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("config: bad colour constant " + s)
	}
	return c
}
