package sim

import "github.com/iburimskiy/dot-connect/internal/config"

// Settings holds the mutable simulation parameters and the live dot count.
// Count always equals the number of particles in the world's registry.
type Settings struct {
	DotRadius       float64
	Speed           float64
	ConnectDistance float64
	MinVelocity     float64
	MaxVelocity     float64
	Frozen          bool
	Count           uint32
}

func DefaultSettings() Settings {
	return Settings{
		DotRadius:       config.DotSize,
		Speed:           config.Speed,
		ConnectDistance: config.ConnectDistance,
		MinVelocity:     config.MinVelocity,
		MaxVelocity:     config.MaxVelocity,
	}
}

// SettingsFrom builds the initial settings from startup options.
func SettingsFrom(cfg config.Config) Settings {
	return Settings{
		DotRadius:       cfg.DotSize,
		Speed:           cfg.Speed,
		ConnectDistance: cfg.ConnectDistance,
		MinVelocity:     cfg.MinVelocity,
		MaxVelocity:     cfg.MaxVelocity,
	}
}
