package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/brunoga/deep"

	"github.com/lixenwraith/flight-globe/airport"
	"github.com/lixenwraith/flight-globe/audio"
	"github.com/lixenwraith/flight-globe/camera"
	"github.com/lixenwraith/flight-globe/flight"
	"github.com/lixenwraith/flight-globe/input"
	"github.com/lixenwraith/flight-globe/log"
	"github.com/lixenwraith/flight-globe/parameter"
	"github.com/lixenwraith/flight-globe/physics"
)

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// LogConfig selects the log level and directory
type LogConfig struct {
	Level string `toml:"level"`
	Dir   string `toml:"dir"`
}

// ScheduleConfig is the spawn mode the app starts in
type ScheduleConfig struct {
	Mode   string `toml:"mode"`
	Origin string `toml:"origin"`
	Dest   string `toml:"dest"`
}

// Config is the resolved application configuration
type Config struct {
	FPS      int                `toml:"fps"`
	Seed     uint64             `toml:"seed"`
	Log      LogConfig          `toml:"log"`
	Schedule ScheduleConfig     `toml:"schedule"`
	Dust     physics.DustConfig `toml:"dust"`
	Flight   flight.Config      `toml:"flight"`
	Camera   camera.Config      `toml:"camera"`
	Audio    audio.Config       `toml:"audio"`

	// Airports extend the built-in set; an entry with a built-in IATA replaces it
	Airports []airport.Airport `toml:"airports"`

	// Keys maps key names to action names, overriding the default table
	Keys map[string]string `toml:"keys"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		FPS:      parameter.FrameRate,
		Log:      LogConfig{Level: "info"},
		Schedule: ScheduleConfig{Mode: flight.ModeRandomPair.String()},
		Dust:     physics.DefaultDustConfig(),
		Flight:   flight.DefaultConfig(),
		Camera:   camera.DefaultConfig(),
		Audio:    audio.DefaultConfig(),
	}
}

// Load decodes a TOML file over the defaults
// Keys the decoder does not recognize are logged, not fatal
func Load(path string, logger *log.Logger) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		logger.Warn("Unknown config keys", "path", path, "keys", strings.Join(keys, ", "))
	}
	return cfg, nil
}

// Decode parses TOML text over the defaults, used for embedded and test configs
func Decode(text string) (Config, error) {
	cfg := Default()
	if _, err := toml.Decode(text, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every section and the cross-section constraints
func (c Config) Validate() error {
	check := func(section string, err error) error {
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, section, err)
		}
		return nil
	}

	if c.FPS < 1 || c.FPS > 240 {
		return check("fps", fmt.Errorf("%d must be in [1, 240]", c.FPS))
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return check("log", err)
	}
	if _, err := flight.ParseMode(c.Schedule.Mode); err != nil {
		return check("schedule", err)
	}
	if err := check("dust", c.Dust.Validate()); err != nil {
		return err
	}
	if err := check("flight", c.Flight.Validate()); err != nil {
		return err
	}
	if err := check("camera", c.Camera.Validate()); err != nil {
		return err
	}
	if err := check("audio", c.Audio.Validate()); err != nil {
		return err
	}
	if _, err := c.Catalog(); err != nil {
		return check("airports", err)
	}
	if _, err := c.KeyTable(); err != nil {
		return check("keys", err)
	}
	return nil
}

// Catalog merges configured airports over the built-in set
func (c Config) Catalog() (*airport.Catalog, error) {
	if len(c.Airports) == 0 {
		return airport.Default(), nil
	}

	merged := airport.Default().All()
	index := make(map[string]int, len(merged))
	for i, a := range merged {
		index[a.IATA] = i
	}
	for _, a := range c.Airports {
		code := strings.ToUpper(strings.TrimSpace(a.IATA))
		if i, ok := index[code]; ok {
			merged[i] = a
			continue
		}
		index[code] = len(merged)
		merged = append(merged, a)
	}
	return airport.NewCatalog(merged)
}

// KeyTable returns the default bindings with configured overrides applied
func (c Config) KeyTable() (*input.KeyTable, error) {
	base := input.DefaultKeyTable()
	if len(c.Keys) == 0 {
		return base, nil
	}
	override, err := input.LoadKeyConfig(c.Keys)
	if err != nil {
		return nil, err
	}
	return input.MergeKeyTable(base, override), nil
}

// Clone returns a deep copy, so flag overrides never alias the loaded config
func (c Config) Clone() Config {
	return deep.MustCopy(c)
}
