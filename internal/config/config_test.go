package config

import (
	"flag"
	"io"
	"testing"
	"time"

	"github.com/pkg/errors"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse("dot-connect", nil, io.Discard)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.ConnectDistance != 300 || cfg.Speed != 1 || cfg.DotSize != 6 {
		t.Errorf("unexpected simulation defaults: %+v", cfg)
	}
	if cfg.MinVelocity != -600 || cfg.MaxVelocity != 600 {
		t.Errorf("velocity range = [%g, %g), want [-600, 600)", cfg.MinVelocity, cfg.MaxVelocity)
	}
	if cfg.SpawnInterval != 70*time.Millisecond {
		t.Errorf("spawn interval = %v, want 70ms", cfg.SpawnInterval)
	}
	if got := cfg.LineColor.Hex(); got != "#ed82ed" {
		t.Errorf("line colour = %s, want #ed82ed", got)
	}
}

func TestParseFlags(t *testing.T) {
	args := []string{
		"-width", "800", "-height", "600",
		"-connect", "120", "-speed", "2.5",
		"-spawn-interval", "100ms", "-dots", "40",
		"-seed", "7", "-headless", "-ticks", "10",
		"-line-color", "#00ff00",
	}
	cfg, err := Parse("dot-connect", args, io.Discard)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Width != 800 || cfg.Height != 600 {
		t.Errorf("size = %dx%d, want 800x600", cfg.Width, cfg.Height)
	}
	if cfg.ConnectDistance != 120 || cfg.Speed != 2.5 {
		t.Errorf("connect/speed = %g/%g", cfg.ConnectDistance, cfg.Speed)
	}
	if cfg.SpawnInterval != 100*time.Millisecond || cfg.InitialDots != 40 || cfg.Seed != 7 {
		t.Errorf("unexpected spawn options: %+v", cfg)
	}
	if !cfg.Headless || cfg.Ticks != 10 {
		t.Errorf("headless = %v ticks = %d", cfg.Headless, cfg.Ticks)
	}
	if got := cfg.LineColor.Hex(); got != "#00ff00" {
		t.Errorf("line colour = %s, want #00ff00", got)
	}
}

func TestParseNegativeConnectAllowed(t *testing.T) {
	cfg, err := Parse("dot-connect", []string{"-connect", "-10", "-speed", "-1"}, io.Discard)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.ConnectDistance != -10 || cfg.Speed != -1 {
		t.Errorf("connect/speed = %g/%g, want -10/-1", cfg.ConnectDistance, cfg.Speed)
	}
}

func TestParseHelp(t *testing.T) {
	_, err := Parse("dot-connect", []string{"-h"}, io.Discard)
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("expected flag.ErrHelp, got %v", err)
	}
}

func TestParseBadColour(t *testing.T) {
	if _, err := Parse("dot-connect", []string{"-dot-color", "violet"}, io.Discard); err == nil {
		t.Fatal("expected error for non-hex colour")
	}
}

func TestParseExtraArgs(t *testing.T) {
	_, err := Parse("dot-connect", []string{"stray"}, io.Discard)
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"negative height", func(c *Config) { c.Height = -1 }},
		{"zero tps", func(c *Config) { c.TPS = 0 }},
		{"zero dot size", func(c *Config) { c.DotSize = 0 }},
		{"empty velocity range", func(c *Config) { c.MinVelocity, c.MaxVelocity = 5, 5 }},
		{"inverted velocity range", func(c *Config) { c.MinVelocity, c.MaxVelocity = 10, -10 }},
		{"zero spawn interval", func(c *Config) { c.SpawnInterval = 0 }},
		{"negative dots", func(c *Config) { c.InitialDots = -3 }},
		{"zero hz", func(c *Config) { c.Hz = 0 }},
		{"negative log interval", func(c *Config) { c.LogInterval = -time.Second }},
	}

	if err := Default().Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestDefaultPalette(t *testing.T) {
	cfg := Default()
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"line", cfg.LineColor.Hex(), "#ed82ed"},
		{"dot", cfg.DotColor.Hex(), "#ee82ee"},
		{"text", cfg.TextColor.Hex(), "#faebd7"},
		{"background", cfg.Background.Hex(), "#666666"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s colour = %s, want %s", tt.name, tt.got, tt.want)
		}
	}
}

func TestMustHexPanicsOnBadConstant(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	mustHex("violet")
}
