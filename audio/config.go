package audio

import (
	"fmt"
	"time"

	"github.com/lixenwraith/flight-globe/parameter"
)

// Config controls sound output
type Config struct {
	Enabled    bool          `toml:"enabled"`
	Volume     float64       `toml:"volume"`
	SampleRate int           `toml:"sample_rate"`
	MinGap     time.Duration `toml:"min_gap"`
}

// DefaultConfig returns audio enabled at the standard chime volume
func DefaultConfig() Config {
	return Config{
		Enabled:    true,
		Volume:     parameter.ChimeVolume,
		SampleRate: parameter.AudioSampleRate,
		MinGap:     parameter.ChimeMinGap,
	}
}

// Validate reports the first out-of-range field
func (c Config) Validate() error {
	switch {
	case c.Volume < 0 || c.Volume > 1:
		return fmt.Errorf("audio volume %v must be in [0, 1]", c.Volume)
	case c.SampleRate < 8000:
		return fmt.Errorf("audio sample rate %d must be >= 8000", c.SampleRate)
	case c.MinGap < 0:
		return fmt.Errorf("audio min gap %v must be >= 0", c.MinGap)
	}
	return nil
}
