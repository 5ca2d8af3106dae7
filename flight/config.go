package flight

import (
	"fmt"
	"time"

	"github.com/lixenwraith/flight-globe/parameter"
)

// Config controls path geometry, lifecycle and the spawn schedule
type Config struct {
	Radius      float64       `toml:"radius"`
	Lift        float64       `toml:"lift"`
	Segments    int           `toml:"segments"`
	Glow        bool          `toml:"glow"`
	GlowOpacity float64       `toml:"glow_opacity"`
	Interval    time.Duration `toml:"interval"`
	MaxActive   int           `toml:"max_active"`
}

// DefaultConfig returns paths on the border shell with a 1.5s spawn period
func DefaultConfig() Config {
	return Config{
		Radius:      parameter.EarthRadius + parameter.BorderOffset,
		Lift:        parameter.FlightArcLift,
		Segments:    parameter.FlightSegments,
		Glow:        parameter.FlightGlowEnabled,
		GlowOpacity: parameter.FlightGlowOpacity,
		Interval:    parameter.FlightSpawnInterval,
		MaxActive:   parameter.FlightMaxActive,
	}
}

// Validate reports the first out-of-range field
func (c Config) Validate() error {
	switch {
	case c.Radius <= 0:
		return fmt.Errorf("flight radius %v must be > 0", c.Radius)
	case c.Lift < 0:
		return fmt.Errorf("flight lift %v must be >= 0", c.Lift)
	case c.Segments < 1:
		return fmt.Errorf("flight segments %d must be >= 1", c.Segments)
	case c.GlowOpacity < 0 || c.GlowOpacity > 1:
		return fmt.Errorf("flight glow opacity %v must be in [0, 1]", c.GlowOpacity)
	case c.Interval <= 0:
		return fmt.Errorf("flight interval %v must be > 0", c.Interval)
	case c.MaxActive < 0:
		return fmt.Errorf("flight max active %d must be >= 0", c.MaxActive)
	}
	return nil
}
